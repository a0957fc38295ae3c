package app

import (
	"context"
	"errors"
	"testing"

	"github.com/pscheid92/wordbook/internal/adapter/memory"
	"github.com/pscheid92/wordbook/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	hits, misses int
	outcomes     []domain.DefinitionOutcome
	reasons      []string
	lastTotal    int
}

func (o *recordingObserver) LookupRecorded(hit bool) {
	if hit {
		o.hits++
	} else {
		o.misses++
	}
}

func (o *recordingObserver) DefinitionRecorded(outcome domain.DefinitionOutcome, totalEntries int) {
	o.outcomes = append(o.outcomes, outcome)
	o.lastTotal = totalEntries
}

func (o *recordingObserver) InvalidEntry(reason string) {
	o.reasons = append(o.reasons, reason)
}

type failingRepo struct {
	err error
}

func (r *failingRepo) Find(context.Context, string) (domain.Entry, error) {
	return domain.Entry{}, r.err
}

func (r *failingRepo) Append(context.Context, domain.Entry) (int, error) {
	return 0, r.err
}

func (r *failingRepo) Count(context.Context) int {
	return 0
}

func newTestService() (*DictionaryService, *recordingObserver) {
	obs := &recordingObserver{}
	return NewDictionaryService(memory.NewDictionary(), obs), obs
}

func TestDefine_RecordsEntry(t *testing.T) {
	svc, obs := newTestService()

	def, err := svc.Define(context.Background(), []byte(`{"word":"Cat ","definition":" a small animal "}`))
	require.NoError(t, err)

	assert.Equal(t, domain.Entry{Word: "cat", Definition: "a small animal"}, def.Entry)
	assert.Equal(t, 1, def.TotalEntries)
	assert.Equal(t, []domain.DefinitionOutcome{domain.DefinitionCreated}, obs.outcomes)
	assert.Equal(t, 1, obs.lastTotal)
}

func TestDefine_TotalGrowsByOnePerDistinctWord(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	for i, body := range []string{
		`{"word":"cat","definition":"pet"}`,
		`{"word":"dog","definition":"pet"}`,
		`{"word":"owl","definition":"bird"}`,
	} {
		def, err := svc.Define(ctx, []byte(body))
		require.NoError(t, err)
		assert.Equal(t, i+1, def.TotalEntries)
	}
}

func TestDefine_DuplicateIsCaseAndWhitespaceInsensitive(t *testing.T) {
	svc, obs := newTestService()
	ctx := context.Background()

	_, err := svc.Define(ctx, []byte(`{"word":"cat","definition":"pet"}`))
	require.NoError(t, err)

	for _, body := range []string{
		`{"word":"cat","definition":"pet"}`,
		`{"word":"  CAT ","definition":"other"}`,
	} {
		_, err := svc.Define(ctx, []byte(body))
		require.ErrorIs(t, err, domain.ErrWordExists)

		var exists *domain.WordExistsError
		require.True(t, errors.As(err, &exists))
		assert.Equal(t, "cat", exists.Word)
	}

	assert.Equal(t, []domain.DefinitionOutcome{domain.DefinitionCreated, domain.DefinitionDuplicate, domain.DefinitionDuplicate}, obs.outcomes)
	assert.Equal(t, 1, obs.lastTotal)
}

func TestDefine_InvalidRecordsReason(t *testing.T) {
	svc, obs := newTestService()

	_, err := svc.Define(context.Background(), []byte(`{"word":"cat3","definition":"x"}`))
	require.ErrorIs(t, err, domain.ErrInvalidEntry)

	assert.Equal(t, []string{string(domain.ReasonWordContainsDigit)}, obs.reasons)
	assert.Equal(t, []domain.DefinitionOutcome{domain.DefinitionInvalid}, obs.outcomes)
}

func TestDefine_RepositoryError(t *testing.T) {
	repoErr := errors.New("out of memory")
	svc := NewDictionaryService(&failingRepo{err: repoErr}, &recordingObserver{})

	_, err := svc.Define(context.Background(), []byte(`{"word":"cat","definition":"pet"}`))
	require.ErrorIs(t, err, repoErr)
	assert.NotErrorIs(t, err, domain.ErrInvalidEntry)
}

func TestLookup_LowercasesWithoutTrimming(t *testing.T) {
	svc, obs := newTestService()
	ctx := context.Background()
	_, err := svc.Define(ctx, []byte(`{"word":"cat","definition":"a small animal"}`))
	require.NoError(t, err)

	entry, err := svc.Lookup(ctx, "CaT")
	require.NoError(t, err)
	assert.Equal(t, domain.Entry{Word: "cat", Definition: "a small animal"}, entry)

	_, err = svc.Lookup(ctx, " cat")
	assert.ErrorIs(t, err, domain.ErrWordNotFound)

	assert.Equal(t, 1, obs.hits)
	assert.Equal(t, 1, obs.misses)
}

func TestLookup_RepositoryError(t *testing.T) {
	repoErr := errors.New("unavailable")
	svc := NewDictionaryService(&failingRepo{err: repoErr}, &recordingObserver{})

	_, err := svc.Lookup(context.Background(), "cat")
	require.ErrorIs(t, err, repoErr)
	assert.NotErrorIs(t, err, domain.ErrWordNotFound)
}
