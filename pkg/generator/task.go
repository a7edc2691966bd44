package generator

import (
	"context"
	"log/slog"

	"github.com/dububu/mediatools/pkg/provider"
)

type TaskType string

const (
	TaskProduct TaskType = "product"
	TaskSocial  TaskType = "social"
	TaskBanner  TaskType = "banner"
	TaskEmail   TaskType = "email"
	TaskPattern TaskType = "pattern"
	TaskCustom  TaskType = "custom"
)

var TaskTypes = []TaskType{
	TaskProduct,
	TaskSocial,
	TaskBanner,
	TaskEmail,
	TaskPattern,
	TaskCustom,
}

// Task describes one preset invocation. Only the fields of its Type are read:
//
//	product  ProductType, Description, Background
//	social   Theme, Platform, TextOverlay
//	banner   Theme (banner type), Headline, Size
//	email    Theme (campaign)
//	pattern  Pattern
//	custom   Request
type Task struct {
	Type TaskType

	ProductType string
	Description string
	Background  string

	Theme       string
	Platform    string
	TextOverlay string
	Headline    string

	Pattern string
	Size    provider.Size

	Request Request
}

func (g *Generator) Run(ctx context.Context, task Task) []Result {
	switch task.Type {
	case TaskProduct:
		return g.ProductMockup(ctx, task.ProductType, task.Description, task.Background)

	case TaskSocial:
		return g.SocialPost(ctx, task.Theme, task.Platform, task.TextOverlay)

	case TaskBanner:
		return g.Banner(ctx, task.Theme, task.Headline, task.Size)

	case TaskEmail:
		return g.EmailHeader(ctx, task.Theme)

	case TaskPattern:
		return g.Pattern(ctx, task.Pattern)
	}

	return g.Generate(ctx, task.Request)
}

// Batch runs tasks in order and concatenates their results.
func (g *Generator) Batch(ctx context.Context, tasks []Task) []Result {
	var results []Result

	for i, task := range tasks {
		slog.InfoContext(ctx, "processing task", "task", i+1, "total", len(tasks), "type", task.Type)

		results = append(results, g.Run(ctx, task)...)
	}

	return results
}
