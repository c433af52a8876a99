package bot

import (
	"testing"

	"github.com/bwmarrin/discordgo"
)

type stubModule struct {
	name string
}

func (m *stubModule) Name() string                                 { return m.name }
func (m *stubModule) Commands() []*discordgo.ApplicationCommand    { return nil }
func (m *stubModule) CommandHandlers() map[string]InteractionHandler { return nil }
func (m *stubModule) EventHandlers() []EventHandler                { return nil }
func (m *stubModule) Init(ModuleDependencies) error                { return nil }
func (m *stubModule) Shutdown() error                              { return nil }

func TestRegistry(t *testing.T) {
	registry := NewRegistry()

	if got := registry.Modules(); len(got) != 0 {
		t.Errorf("new registry has %d modules, want 0", len(got))
	}

	registry.Register(&stubModule{name: "alpha"})
	registry.Register(&stubModule{name: "beta"})

	modules := registry.Modules()
	if len(modules) != 2 {
		t.Fatalf("Modules() = %d entries, want 2", len(modules))
	}
	if modules[0].Name() != "alpha" || modules[1].Name() != "beta" {
		t.Errorf("modules registered out of order: %s, %s", modules[0].Name(), modules[1].Name())
	}

	// The snapshot is a copy; mutating it must not affect the registry.
	modules[0] = &stubModule{name: "intruder"}
	if registry.Modules()[0].Name() != "alpha" {
		t.Error("mutating the snapshot changed the registry")
	}
}

func TestGlobalRegistry(t *testing.T) {
	ResetGlobalRegistry()
	t.Cleanup(ResetGlobalRegistry)

	Register(&stubModule{name: "global"})

	modules := Modules()
	if len(modules) != 1 || modules[0].Name() != "global" {
		t.Errorf("Modules() = %v, want the single registered module", modules)
	}
}
