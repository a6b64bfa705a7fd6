package usecase

import "errors"

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrNotPDF         = errors.New("uploaded file is not a pdf")
	ErrNoSkills       = errors.New("candidate has no extracted skills")
	ErrSessionExpired = errors.New("session expired")
	ErrUpstream       = errors.New("upstream service error")
	ErrInternal       = errors.New("internal error")
)
