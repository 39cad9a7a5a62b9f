package client

import "fmt"

// TaskID normalizes the accepted task reference shapes to the bare task ID
// before any request is built. Callers may hold a plain ID string, a Task
// returned by SessionStatus, or a decoded JSON object carrying a task_id
// field; all three resolve to the same identifier, and the union never
// propagates past this function.
func TaskID(ref any) (string, error) {
	switch t := ref.(type) {
	case string:
		if t == "" {
			return "", fmt.Errorf("task reference is an empty string")
		}
		return t, nil
	case Task:
		return taskIDField(t.TaskID)
	case *Task:
		if t == nil {
			return "", fmt.Errorf("task reference is a nil task")
		}
		return taskIDField(t.TaskID)
	case map[string]any:
		id, ok := t["task_id"].(string)
		if !ok {
			return "", fmt.Errorf("task reference object has no task_id field")
		}
		return taskIDField(id)
	default:
		return "", fmt.Errorf("unsupported task reference type %T", ref)
	}
}

func taskIDField(id string) (string, error) {
	if id == "" {
		return "", fmt.Errorf("task reference has an empty task_id")
	}
	return id, nil
}
