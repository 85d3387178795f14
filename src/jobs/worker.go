package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"os"

	"formflow-backend/src/database"
	"formflow-backend/src/storage"
	"formflow-backend/src/utils"

	"github.com/hibiken/asynq"
)

// EnqueueFileCleanup schedules removal of a storage path. Returns false
// when the job queue is not available so the caller can fall back to an
// inline delete.
func EnqueueFileCleanup(path string) bool {
	if database.AsynqClient == nil {
		return false
	}

	task, err := NewFileCleanupTask(path)
	if err != nil {
		log.Println("❌ Failed to build cleanup task:", err)
		return false
	}
	if _, err := database.AsynqClient.Enqueue(task, asynq.MaxRetry(5)); err != nil {
		log.Println("❌ Failed to enqueue cleanup task:", err)
		return false
	}
	return true
}

// HandleFileCleanupTask removes one storage path. A file that is already
// gone counts as done, everything else is retried by asynq.
func HandleFileCleanupTask(ctx context.Context, t *asynq.Task) error {
	var payload FileCleanupPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		log.Println("❌ Payload decode error:", err)
		return err
	}

	store := storage.New(storage.DefaultRoot())
	if err := store.Delete(payload.Path); err != nil {
		var se *utils.StorageError
		if errors.As(err, &se) && os.IsNotExist(errors.Unwrap(se)) {
			log.Println("⚠️ File already gone. Skipping cleanup:", payload.Path)
			return nil
		}
		log.Println("❌ Failed to remove file:", err)
		return err
	}

	log.Println("🧹 Removed file:", payload.Path)
	return nil
}

// StartWorker runs the asynq worker loop. Call it in a goroutine after
// InitRedis and InitAsynq succeeded.
func StartWorker() {
	if database.RedisURI == "" || database.RedisClient == nil {
		log.Println("⚠️ Redis not available. Worker not started.")
		return
	}

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: database.RedisURI},
		asynq.Config{Concurrency: 5},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeFileCleanup, HandleFileCleanupTask)

	if err := srv.Run(mux); err != nil {
		log.Println("❌ Worker stopped:", err)
	}
}
