package openai

import (
	"errors"
	"fmt"

	"github.com/openai/openai-go/v3"
)

func convertError(err error) error {
	var apierr *openai.Error

	if errors.As(err, &apierr) && apierr.Message != "" {
		return fmt.Errorf("openai: %s (status %d)", apierr.Message, apierr.StatusCode)
	}

	return err
}
