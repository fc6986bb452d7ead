package service

import (
	"errors"

	"github.com/Kamaludyn/career-connect-backend/internal/apperr"
)

func isNotFound(err error) bool {
	return errors.Is(err, apperr.ErrNotFound)
}
