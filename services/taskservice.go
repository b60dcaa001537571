package services

import (
	"context"
	"errors"
	"sort"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"planboard/model"
)

var ErrTaskNotFound = errors.New("task not found")

func GetTask(ctx context.Context, fb *firestore.Client, taskID string) (*model.Task, error) {
	doc, err := fb.Collection("Tasks").Doc(taskID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	var task model.Task
	if err := doc.DataTo(&task); err != nil {
		return nil, err
	}
	return &task, nil
}

// TasksForUser loads every task visible to the user: personal tasks they
// created plus all tasks of the projects they belong to. The result is
// ordered by creation time so filtering keeps a stable order.
func TasksForUser(ctx context.Context, fb *firestore.Client, userID string, projectIDs []string) ([]model.Task, error) {
	seen := make(map[string]struct{})
	var tasks []model.Task

	own := fb.Collection("Tasks").Where("createdby", "==", userID).Documents(ctx)
	if err := collectTasks(own, seen, &tasks); err != nil {
		return nil, err
	}

	// Firestore "in" queries take at most 30 values per batch.
	for start := 0; start < len(projectIDs); start += 30 {
		end := start + 30
		if end > len(projectIDs) {
			end = len(projectIDs)
		}
		iter := fb.Collection("Tasks").
			Where("projectid", "in", projectIDs[start:end]).
			Documents(ctx)
		if err := collectTasks(iter, seen, &tasks); err != nil {
			return nil, err
		}
	}

	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].CreatedAt.Before(tasks[j].CreatedAt)
	})
	return tasks, nil
}

func TasksForProject(ctx context.Context, fb *firestore.Client, projectID string) ([]model.Task, error) {
	seen := make(map[string]struct{})
	var tasks []model.Task
	iter := fb.Collection("Tasks").Where("projectid", "==", projectID).Documents(ctx)
	if err := collectTasks(iter, seen, &tasks); err != nil {
		return nil, err
	}
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].CreatedAt.Before(tasks[j].CreatedAt)
	})
	return tasks, nil
}

func collectTasks(iter *firestore.DocumentIterator, seen map[string]struct{}, out *[]model.Task) error {
	defer iter.Stop()
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			return nil
		}
		if err != nil {
			return err
		}
		var t model.Task
		if err := doc.DataTo(&t); err != nil {
			return err
		}
		if _, ok := seen[t.TaskID]; ok {
			continue
		}
		seen[t.TaskID] = struct{}{}
		*out = append(*out, t)
	}
}
