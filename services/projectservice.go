package services

import (
	"context"
	"errors"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"planboard/model"
)

var ErrProjectNotFound = errors.New("project not found")

func GetProject(ctx context.Context, fb *firestore.Client, projectID string) (*model.Project, error) {
	doc, err := fb.Collection("Projects").Doc(projectID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	var project model.Project
	if err := doc.DataTo(&project); err != nil {
		return nil, err
	}
	return &project, nil
}

// ProjectsForUser returns every project the user created or is a member
// of. Firestore cannot OR those two conditions in one query, so they run
// separately and are merged, owned projects first.
func ProjectsForUser(ctx context.Context, fb *firestore.Client, userID string) ([]model.Project, error) {
	seen := make(map[string]struct{})
	var projects []model.Project

	owned := fb.Collection("Projects").Where("userid", "==", userID).Documents(ctx)
	if err := collectProjects(owned, seen, &projects); err != nil {
		return nil, err
	}

	member := fb.Collection("Projects").
		Where("memberids", "array-contains", userID).
		Documents(ctx)
	if err := collectProjects(member, seen, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func collectProjects(iter *firestore.DocumentIterator, seen map[string]struct{}, out *[]model.Project) error {
	defer iter.Stop()
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			return nil
		}
		if err != nil {
			return err
		}
		var p model.Project
		if err := doc.DataTo(&p); err != nil {
			return err
		}
		if _, ok := seen[p.ProjectID]; ok {
			continue
		}
		seen[p.ProjectID] = struct{}{}
		*out = append(*out, p)
	}
}

// MemberIDs is the flat id list stored next to the member records so the
// membership query above can use array-contains.
func MemberIDs(project *model.Project) []string {
	ids := make([]string, 0, len(project.Members))
	for _, m := range project.Members {
		ids = append(ids, m.UserID)
	}
	return ids
}

func AllCategories(ctx context.Context, fb *firestore.Client) ([]model.Category, error) {
	iter := fb.Collection("Categories").OrderBy("name", firestore.Asc).Documents(ctx)
	defer iter.Stop()
	var cats []model.Category
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var c model.Category
		if err := doc.DataTo(&c); err != nil {
			return nil, err
		}
		cats = append(cats, c)
	}
	return cats, nil
}
