package bot

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gitlab.com/aoterocom/AOQuantbot/providers/paper"
)

func TestResolveCapitalUsesAvailableBalance(t *testing.T) {
	t.Setenv("quoteAsset", "EUR")
	assert.Equal(t, 10000.0, resolveCapital(paper.NewPaperService(), 500.0))
}

func TestResolveCapitalWithoutQuoteAsset(t *testing.T) {
	t.Setenv("quoteAsset", "")
	assert.Equal(t, 500.0, resolveCapital(paper.NewPaperService(), 500.0))
}

// unfundedExchange reports no holdings of any asset.
type unfundedExchange struct {
	paper.PaperService
}

func (ue *unfundedExchange) GetAvailableBalance(asset string) (float64, error) {
	return -1.0, nil
}

type unreachableExchange struct {
	paper.PaperService
}

func (ue *unreachableExchange) GetAvailableBalance(asset string) (float64, error) {
	return 0, fmt.Errorf("error: account service unavailable")
}

func TestResolveCapitalFallsBackOnBadBalance(t *testing.T) {
	t.Setenv("quoteAsset", "EUR")
	assert.Equal(t, 500.0, resolveCapital(&unfundedExchange{}, 500.0))
	assert.Equal(t, 500.0, resolveCapital(&unreachableExchange{}, 500.0))
}
