package prices

import (
	"context"
	"errors"
	"testing"

	"goldrates/internal/domain"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRecordSnapshot_PersistsServedLists(t *testing.T) {
	source := new(MockPriceSource)
	source.On("Fetch", mock.Anything).Return(domain.PriceSet{
		Gold:     items("gold", 12),
		Currency: items("currency", 4),
	})

	repo := new(MockHistoryRepository)
	repo.On("InsertQuotes", mock.Anything, mock.Anything, mock.MatchedBy(func(set domain.PriceSet) bool {
		// list caps apply to recorded quotes exactly as to served ones
		return len(set.Gold) == 10 && len(set.Currency) == 4
	})).Return(nil).Once()

	svc := NewService(source, repo)
	err := RecordSnapshot(context.Background(), "exec-1", svc, repo)
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestRecordSnapshot_PropagatesRepoError(t *testing.T) {
	source := new(MockPriceSource)
	source.On("Fetch", mock.Anything).Return(domain.PriceSet{Gold: items("gold", 1)})

	repo := new(MockHistoryRepository)
	repo.On("InsertQuotes", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("insert failed")).Once()

	svc := NewService(source, repo)
	err := RecordSnapshot(context.Background(), "exec-2", svc, repo)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to persist snapshot")
}
