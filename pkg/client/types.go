package client

// Session is the handle returned when a session is started. Tasks inside it
// are referenced by their own opaque IDs.
type Session struct {
	SessionID string `json:"session_id"`
	TaskCount int    `json:"task_count"`
}

// Task is a single benchmark exercise instance scoped to a session. The
// server creates tasks when the session starts; the client only ever refers
// to them by ID.
type Task struct {
	TaskID string   `json:"task_id"`
	Status string   `json:"status,omitempty"`
	Logs   []string `json:"logs,omitempty"`
}

// SessionStatus lists the tasks in a session.
type SessionStatus struct {
	Tasks []Task `json:"tasks"`
}

// EvalOutcome is the evaluation verdict the server attaches when a task
// completes.
type EvalOutcome struct {
	Success bool `json:"success"`
}

// TaskResult is the response to task start/complete calls.
type TaskResult struct {
	TaskID string       `json:"task_id,omitempty"`
	Status string       `json:"status,omitempty"`
	Eval   *EvalOutcome `json:"eval,omitempty"`
}

// StartSessionRequest names a new session run. Architecture defaults to
// x86_64 when left empty.
type StartSessionRequest struct {
	Benchmark    string `json:"benchmark"`
	Workspace    string `json:"workspace"`
	Name         string `json:"name"`
	Architecture string `json:"architecture"`
}
