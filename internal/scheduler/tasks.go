package scheduler

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TaskCadenceSweep = "cadence.sweep"

const TaskCadenceEvaluate = "cadence.evaluate"

type CadenceEvaluatePayload struct {
	LeadID string `json:"leadId"`
}

func NewCadenceSweepTask() *asynq.Task {
	return asynq.NewTask(TaskCadenceSweep, nil)
}

func NewCadenceEvaluateTask(payload CadenceEvaluatePayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskCadenceEvaluate, data), nil
}

func ParseCadenceEvaluatePayload(task *asynq.Task) (CadenceEvaluatePayload, error) {
	var payload CadenceEvaluatePayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return CadenceEvaluatePayload{}, err
	}
	return payload, nil
}
