package services

import (
	"context"
	"time"

	"github.com/zatekoja/bookingengine/internal/domain/repositories"
	"github.com/zatekoja/bookingengine/pkg/config"
)

const (
	maxReportedCollections = 10
	maxReportedErrorLength = 50
	diagnosticsTimeout     = 3 * time.Second
)

// DiagnosticsReport describes backend and document store health
type DiagnosticsReport struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// DiagnosticsService reports on connectivity without ever failing
type DiagnosticsService struct {
	store       repositories.StoreInspector
	cfg         config.MongoConfig
	collections []string
}

// NewDiagnosticsService creates a new diagnostics service. store may be nil;
// collections names the collections the application writes to.
func NewDiagnosticsService(store repositories.StoreInspector, cfg config.MongoConfig, collections []string) *DiagnosticsService {
	return &DiagnosticsService{store: store, cfg: cfg, collections: collections}
}

// Schema returns the names of the application's collections
func (s *DiagnosticsService) Schema() []string {
	return append([]string(nil), s.collections...)
}

// Report probes the document store
func (s *DiagnosticsService) Report(ctx context.Context) *DiagnosticsReport {
	report := &DiagnosticsReport{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		DatabaseURL:      setOrNot(s.cfg.URISet),
		DatabaseName:     setOrNot(s.cfg.DatabaseSet),
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}

	if s.store == nil {
		return report
	}

	ctx, cancel := context.WithTimeout(ctx, diagnosticsTimeout)
	defer cancel()

	if err := s.store.Ping(ctx); err != nil {
		report.Database = "❌ Error: " + truncate(err.Error(), maxReportedErrorLength)
		return report
	}
	report.Database = "✅ Available"
	report.ConnectionStatus = "Connected"

	names, err := s.store.ListCollectionNames(ctx)
	if err != nil {
		report.Database = "⚠️  Connected but Error: " + truncate(err.Error(), maxReportedErrorLength)
		return report
	}
	if len(names) > maxReportedCollections {
		names = names[:maxReportedCollections]
	}
	report.Collections = names
	report.Database = "✅ Connected & Working"
	return report
}

func setOrNot(set bool) string {
	if set {
		return "✅ Set"
	}
	return "❌ Not Set"
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
