package domain

// Queue is a strict FIFO queue of pending playback requests. The head entry
// is removed at the moment its playback is initiated, not at completion, so
// the queue only ever holds tracks that have not started playing.
type Queue struct {
	requests []QueuedRequest
}

// NewQueue creates a new empty Queue.
func NewQueue() Queue {
	return Queue{
		requests: make([]QueuedRequest, 0),
	}
}

// Len returns the number of pending requests.
func (q *Queue) Len() int {
	return len(q.requests)
}

// IsEmpty returns true if the queue has no pending requests.
func (q *Queue) IsEmpty() bool {
	return q.Len() == 0
}

// Enqueue appends a request to the tail. No deduplication, no size cap.
func (q *Queue) Enqueue(req QueuedRequest) {
	q.requests = append(q.requests, req)
}

// DequeueNext removes and returns the head request, or nil if the queue is empty.
func (q *Queue) DequeueNext() *QueuedRequest {
	if q.IsEmpty() {
		return nil
	}

	req := q.requests[0]
	q.requests = q.requests[1:]
	return &req
}

// PeekMany returns a read-only copy of up to n leading requests for display.
// It does not mutate the queue.
func (q *Queue) PeekMany(n int) []QueuedRequest {
	if n > q.Len() {
		n = q.Len()
	}
	if n <= 0 {
		return nil
	}

	result := make([]QueuedRequest, n)
	copy(result, q.requests[:n])
	return result
}

// Clear removes all pending requests unconditionally. It does not by itself
// stop in-flight playback; sequencing that is the controller's job.
func (q *Queue) Clear() {
	q.requests = make([]QueuedRequest, 0)
}
