package api

import (
	"time"

	"portscope/logging"
	"portscope/scanner"
)

// defaultWorkers is the scan concurrency used when a task doesn't set one.
const defaultWorkers = 100

// StartWorkers launches background goroutines that process scan tasks.
func StartWorkers(store TaskStore, numWorkers int) {
	for i := 0; i < numWorkers; i++ {
		go workerLoop(store)
	}
}

func workerLoop(store TaskStore) {
	logger := logging.Logger()
	for {
		taskID, err := store.PopFromQueue()
		if err != nil {
			logger.Error("worker failed to pop task", "error", err)
			time.Sleep(time.Second)
			continue
		}

		task, err := store.GetTask(taskID)
		if err != nil {
			if err == ErrTaskNotFound {
				logger.Warn("worker task disappeared", "task_id", taskID)
				continue
			}
			logger.Error("worker failed to load task", "task_id", taskID, "error", err)
			continue
		}

		task.Status = "running"
		task.Error = ""
		task.Report = nil
		task.CompletedAt = nil
		if err := store.UpdateTask(task); err != nil {
			logger.Error("worker failed to mark task running", "task_id", taskID, "error", err)
			continue
		}

		startPort, endPort, err := parsePortRange(task.Ports)
		if err != nil {
			failTask(task, store, err)
			continue
		}

		workers := task.Workers
		if workers <= 0 {
			workers = defaultWorkers
		}

		rep, err := scanner.Run(scanner.Config{
			Target:    task.Target,
			StartPort: startPort,
			EndPort:   endPort,
			Workers:   workers,
		})
		if err != nil {
			failTask(task, store, err)
			continue
		}

		task.Status = "completed"
		task.Report = rep
		now := time.Now().UTC()
		task.CompletedAt = &now

		if err := store.UpdateTask(task); err != nil {
			logger.Error("worker failed to update task", "task_id", task.ID, "error", err)
		}
	}
}

func failTask(task *ScanTask, store TaskStore, err error) {
	logger := logging.Logger()
	logger.Error("worker task failed", "task_id", task.ID, "error", err)
	task.Status = "failed"
	task.Error = err.Error()
	task.Report = nil
	now := time.Now().UTC()
	task.CompletedAt = &now
	if updateErr := store.UpdateTask(task); updateErr != nil {
		logger.Error("worker failed to persist failed task", "task_id", task.ID, "error", updateErr)
	}
}
