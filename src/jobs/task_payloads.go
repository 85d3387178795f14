package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TypeFileCleanup = "file:cleanup"

type FileCleanupPayload struct {
	Path string `json:"path"`
}

func NewFileCleanupTask(path string) (*asynq.Task, error) {
	payload, err := json.Marshal(FileCleanupPayload{Path: path})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeFileCleanup, payload), nil
}
