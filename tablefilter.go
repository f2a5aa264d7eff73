package tablefilter

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/hupe1980/tablefilter/blobstore"
	"github.com/hupe1980/tablefilter/dataset"
	"github.com/hupe1980/tablefilter/export"
	"github.com/hupe1980/tablefilter/filter"
	"github.com/hupe1980/tablefilter/loader"
)

// Session owns one loaded dataset and its filter state. All filtering runs
// against the original dataset, never against a previous filter result, so
// edits are order-independent and repeatable.
//
// A Session is not safe for concurrent use. One session per user; callers
// embedding sessions in a server must serialize access per session.
type Session struct {
	dataset *dataset.Dataset
	info    loader.Info
	set     *filter.Set
	policy  filter.ComparePolicy
	result  *filter.Result
	opts    options
}

// New creates an empty Session. Load a dataset before adding conditions.
func New(optFns ...Option) *Session {
	o := applyOptions(optFns)
	return &Session{
		set:    filter.NewSetWithCap(o.maxConditions),
		policy: o.comparePolicy,
		opts:   o,
	}
}

// LoadBytes parses an uploaded file into the session's dataset. Any previous
// dataset, filter conditions and filter result are discarded on success; on
// failure the previous state is kept untouched.
func (s *Session) LoadBytes(filename string, content []byte) (loader.Info, error) {
	start := time.Now()

	ds, info, err := loader.Parse(filename, content,
		loader.WithMaxFileSize(s.opts.maxFileSize),
		loader.WithCodec(s.opts.codec),
	)

	s.opts.metricsCollector.RecordLoad(info.RowCount, time.Since(start), err)
	s.opts.logger.LogLoad(context.Background(), filename, info.RowCount, info.ColumnCount, err)

	if err != nil {
		return loader.Info{}, err
	}

	s.dataset = ds
	s.info = info
	s.set = filter.NewSetWithCap(s.opts.maxConditions)
	s.result = nil

	return info, nil
}

// Load reads the named file from r and parses it like LoadBytes. The size
// cap is enforced while reading, so oversized inputs fail without buffering
// the whole stream.
func (s *Session) Load(filename string, r io.Reader) (loader.Info, error) {
	content, err := io.ReadAll(io.LimitReader(r, int64(s.opts.maxFileSize)+1))
	if err != nil {
		return loader.Info{}, fmt.Errorf("read %q: %w", filename, err)
	}
	return s.LoadBytes(filename, content)
}

// Dataset returns the loaded dataset, or nil before any load.
func (s *Session) Dataset() *dataset.Dataset {
	return s.dataset
}

// Info returns the load info of the current dataset.
func (s *Session) Info() loader.Info {
	return s.info
}

// AddCondition validates and adds a filter condition on the named column.
// Invalid input is rejected atomically with *filter.ErrInvalidCondition and
// the session state stays unchanged. raw accepts Go scalars, slices for
// multi-select, and [2]any / []any pairs for ranges.
func (s *Session) AddCondition(column string, op filter.Operator, raw any) error {
	start := time.Now()
	err := s.addCondition(column, op, raw)

	s.opts.metricsCollector.RecordConditionAdd(time.Since(start), err)
	s.opts.logger.LogCondition(context.Background(), column, string(op), err)

	return err
}

func (s *Session) addCondition(column string, op filter.Operator, raw any) error {
	if s.dataset == nil {
		return ErrNoDataset
	}

	cond, err := filter.Validate(s.dataset, column, op, raw, s.policy)
	if err != nil {
		return err
	}
	if err := s.set.Add(cond); err != nil {
		return err
	}

	s.result = nil
	return nil
}

// RemoveCondition drops every condition on the named column. Removing a
// column without conditions is a no-op.
func (s *Session) RemoveCondition(column string) {
	s.set.Remove(column)
	s.result = nil
}

// SetConditionActive toggles conditions on the named column without removing
// them. Inactive conditions are ignored by Apply.
func (s *Session) SetConditionActive(column string, active bool) {
	s.set.SetActive(column, active)
	s.result = nil
}

// ClearConditions removes all conditions and resets the mode to AND. The
// dataset stays loaded.
func (s *Session) ClearConditions() {
	s.set.Clear()
	s.result = nil
}

// SetMode switches between AND and OR combination. The change takes effect
// on the next Apply.
func (s *Session) SetMode(m filter.Mode) {
	s.set.SetMode(m)
	s.result = nil
}

// Mode returns the current combination mode.
func (s *Session) Mode() filter.Mode {
	return s.set.Mode()
}

// Conditions returns a copy of the current conditions in insertion order.
func (s *Session) Conditions() []filter.Condition {
	return s.set.Conditions()
}

// Apply evaluates the filter set against the original dataset and returns
// the filtered view. With no active conditions the full dataset is returned.
// The result is cached until the next state change.
func (s *Session) Apply() (*filter.Result, error) {
	if s.dataset == nil {
		return nil, ErrNoDataset
	}
	if s.result != nil {
		return s.result, nil
	}

	start := time.Now()
	res := filter.Apply(s.dataset, s.set, s.policy)

	s.opts.metricsCollector.RecordApply(res.MatchCount, res.TotalCount, time.Since(start))
	s.opts.logger.LogApply(context.Background(), s.set.Len(), res.MatchCount, res.TotalCount, len(res.Warnings))

	s.result = res
	return res, nil
}

// View returns the current filtered dataset, applying filters if needed.
func (s *Session) View() (*dataset.Dataset, error) {
	res, err := s.Apply()
	if err != nil {
		return nil, err
	}
	return res.Dataset, nil
}

// Reset discards the dataset and all filter state, returning the session to
// its initial empty state.
func (s *Session) Reset() {
	s.dataset = nil
	s.info = loader.Info{}
	s.set = filter.NewSetWithCap(s.opts.maxConditions)
	s.result = nil
}

// Export writes the current filtered view to w. Row and column order match
// the view exactly.
func (s *Session) Export(w io.Writer, optFns ...export.Option) error {
	start := time.Now()

	view, err := s.View()
	if err == nil {
		err = export.Write(w, view, s.exportOptions(optFns)...)
	}

	rows := 0
	if view != nil {
		rows = view.NumRows()
	}
	s.opts.metricsCollector.RecordExport(rows, time.Since(start), err)
	s.opts.logger.LogExport(context.Background(), "", rows, err)

	return err
}

// ExportToStore writes the current filtered view into a named blob. The blob
// only becomes visible if the whole export succeeds.
func (s *Session) ExportToStore(ctx context.Context, store blobstore.BlobStore, name string, optFns ...export.Option) error {
	start := time.Now()

	view, err := s.View()
	if err == nil {
		err = export.ToStore(ctx, store, name, view, s.exportOptions(optFns)...)
	}

	rows := 0
	if view != nil {
		rows = view.NumRows()
	}
	s.opts.metricsCollector.RecordExport(rows, time.Since(start), err)
	s.opts.logger.LogExport(ctx, name, rows, err)

	return err
}

// Publisher records a published export and returns its committed version.
// The s3 package's PublishLog satisfies this.
type Publisher interface {
	Publish(ctx context.Context, key string) (uint64, error)
}

// ExportAndPublish writes the current filtered view into a named blob and,
// once the blob is fully written, records it as the latest published export.
// Returns the committed version. A failed export publishes nothing.
func (s *Session) ExportAndPublish(ctx context.Context, store blobstore.BlobStore, pub Publisher, name string, optFns ...export.Option) (uint64, error) {
	if err := s.ExportToStore(ctx, store, name, optFns...); err != nil {
		return 0, err
	}
	return pub.Publish(ctx, name)
}

// exportOptions prepends the session codec so per-call options still win.
func (s *Session) exportOptions(optFns []export.Option) []export.Option {
	return append([]export.Option{export.WithCodec(s.opts.codec)}, optFns...)
}
