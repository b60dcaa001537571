package services

import (
	"context"
	"errors"

	"cloud.google.com/go/firestore"

	"planboard/model"
)

func UserExist(ctx context.Context, fb *firestore.Client, email string) (bool, error) {
	query := fb.Collection("Users").Where("email", "==", email).Limit(1)
	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return false, err
	}
	return len(docs) > 0, nil
}

func GetUserData(ctx context.Context, fb *firestore.Client, email string) (*firestore.DocumentSnapshot, error) {
	query := fb.Collection("Users").Where("email", "==", email).Limit(1)
	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, errors.New("user not found")
	}
	return docs[0], nil
}

func GetUserByID(ctx context.Context, fb *firestore.Client, userID string) (*model.User, error) {
	doc, err := fb.Collection("Users").Doc(userID).Get(ctx)
	if err != nil {
		return nil, errors.New("user not found")
	}
	var user model.User
	if err := doc.DataTo(&user); err != nil {
		return nil, err
	}
	return &user, nil
}
