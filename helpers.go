package main

import (
	"context"

	"github.com/watershedhub/web/i18n"
)

func t(ctx context.Context, id string) string {
	return i18n.Translate(ctx, id, nil)
}

func tWithData(ctx context.Context, id string, data map[string]any) string {
	return i18n.Translate(ctx, id, data)
}
