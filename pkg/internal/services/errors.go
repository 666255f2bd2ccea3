package services

import "errors"

var (
	ErrMeetUpNotFound      = errors.New("meetup not found")
	ErrCategoryNotFound    = errors.New("category not found")
	ErrCategoryExists      = errors.New("category already exists")
	ErrFileNotFound        = errors.New("file not found")
	ErrAlreadySubscribed   = errors.New("subscription already exists")
	ErrNotSubscribed       = errors.New("subscription does not exist")
	ErrPreferenceExists    = errors.New("preference already exists")
	ErrPreferenceNotExists = errors.New("preference does not exist")
)
