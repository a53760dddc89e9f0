package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type taskListState int

const (
	taskListAbsent taskListState = iota
	taskListRaw
	taskListParsed
)

// TaskList is the caller-supplied task list attached to /create-tasks and
// /create-advisory requests. The wire value may be a JSON array of tasks, a
// JSON string containing a serialized array, or null. The union is resolved
// exactly once at the usecase boundary via Resolve; nothing deeper in the
// pipeline inspects the wire shape.
type TaskList struct {
	state taskListState
	raw   string
	tasks []Task
}

// ParsedTaskList wraps an already-decoded task list, mainly for tests.
func ParsedTaskList(tasks []Task) TaskList {
	return TaskList{state: taskListParsed, tasks: tasks}
}

// RawTaskList wraps a serialized task list, mainly for tests.
func RawTaskList(raw string) TaskList {
	return TaskList{state: taskListRaw, raw: raw}
}

func (tl *TaskList) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		tl.state = taskListAbsent
		return nil
	}

	if trimmed[0] == '"' {
		var raw string
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return err
		}
		tl.state = taskListRaw
		tl.raw = raw
		return nil
	}

	var tasks []Task
	if err := json.Unmarshal(trimmed, &tasks); err != nil {
		return fmt.Errorf("%w: task list must be an array of tasks or a JSON string", ErrInvalidFormat)
	}
	tl.state = taskListParsed
	tl.tasks = tasks
	return nil
}

func (tl TaskList) MarshalJSON() ([]byte, error) {
	switch tl.state {
	case taskListRaw:
		return json.Marshal(tl.raw)
	case taskListParsed:
		return json.Marshal(tl.tasks)
	default:
		return []byte("null"), nil
	}
}

// Resolve normalizes the union into a concrete task list. ok is false when no
// usable list is present. A raw string that does not decode to an array
// returns an error; callers log it and proceed without the list rather than
// failing the request.
func (tl TaskList) Resolve() (tasks []Task, ok bool, err error) {
	switch tl.state {
	case taskListParsed:
		return tl.tasks, true, nil
	case taskListRaw:
		var parsed []Task
		if err := json.Unmarshal([]byte(tl.raw), &parsed); err != nil {
			return nil, false, fmt.Errorf("parse task list string: %w", err)
		}
		return parsed, true, nil
	default:
		return nil, false, nil
	}
}
