package evaluator

import (
	"drills/pkg/domain"
	"drills/pkg/storage"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const cursorSeparator = "/"

// encodeCursor renders a page cursor as an opaque, URL safe token.
func encodeCursor(c storage.EvaluationCursor) string {
	raw := c.CreatedAt.UTC().Format(time.RFC3339Nano) + cursorSeparator + c.ID.String()

	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

func decodeCursor(token string) (storage.EvaluationCursor, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return storage.EvaluationCursor{}, fmt.Errorf("could not decode cursor: %w", err)
	}

	ts, id, ok := strings.Cut(string(raw), cursorSeparator)
	if !ok {
		return storage.EvaluationCursor{}, fmt.Errorf("cursor has no evaluation id")
	}

	createdAt, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return storage.EvaluationCursor{}, fmt.Errorf("could not parse cursor time: %w", err)
	}

	evaluationID, err := uuid.Parse(id)
	if err != nil {
		return storage.EvaluationCursor{}, fmt.Errorf("could not parse cursor id: %w", err)
	}

	return storage.EvaluationCursor{CreatedAt: createdAt, ID: domain.EvaluationID(evaluationID)}, nil
}
