package service

import (
	"errors"

	"vaulting/scoring"
)

var (
	ErrScoreMismatch     = errors.New("front end and back end scores differ")
	ErrAlreadySubmitted  = errors.New("score sheet already submitted for this table")
	ErrInvalidPart       = errors.New("invalid part")
	ErrPartNotDefined    = errors.New("part not defined for this group")
	ErrPermission        = errors.New("not allowed")
	ErrValidation        = errors.New("validation failed")
	ErrCategoryInUse     = errors.New("category is used by entries")
	ErrNoSelectedEvent   = errors.New("no event is selected")
	ErrDataInconsistency = scoring.ErrDataInconsistency
)
