package app

import (
	"context"
	"fmt"
	"log/slog"
	"maps"

	"github.com/gi8lino/jirareport/internal/config"
	"github.com/gi8lino/jirareport/internal/jira"
	"github.com/gi8lino/jirareport/internal/summary"
)

// Searcher runs a JQL search.
type Searcher interface {
	SearchJQL(ctx context.Context, params map[string]string) (*jira.Response, error)
}

// SummarizeMeaningfulIssues searches issues by JQL and summarizes every one that is not closed.
// An empty jql searches without a filter.
func SummarizeMeaningfulIssues(ctx context.Context, s Searcher, jql string, cfg config.ReportConfig, logger *slog.Logger) ([]summary.Summary, error) {
	params := maps.Clone(cfg.Params)
	if params == nil {
		params = map[string]string{}
	}
	if jql != "" {
		params["jql"] = jql
	} else {
		logger.Warn("no JQL configured, searching all issues")
	}

	resp, err := s.SearchJQL(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("search issues: %w", err)
	}
	logger.Debug("search issues", "url", resp.URL, "status", resp.StatusCode, "bytes", len(resp.Body))

	if err := resp.Err(); err != nil {
		return nil, err
	}

	res, err := jira.DecodeSearchResult(resp)
	if err != nil {
		return nil, err
	}

	summaries, err := summary.Summarize(res, summary.Options{
		ClosedStatus:       cfg.ClosedStatus,
		EstimateField:      cfg.EstimateField,
		IncludeDescription: cfg.IncludeDescription,
		ExpandEmbedded:     cfg.ExpandEmbedded,
	})
	if err != nil {
		return nil, fmt.Errorf("summarize issues: %w", err)
	}

	logger.Debug("summarized issues", "total", len(res.Issues), "kept", len(summaries))
	return summaries, nil
}
