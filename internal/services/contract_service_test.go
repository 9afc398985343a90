package services

import (
	"testing"

	"github.com/contractflow/contractflow/internal/apperr"
	"github.com/contractflow/contractflow/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContractCreateInvertedRange(t *testing.T) {
	f := newFixture(t)
	svc := NewContractService(f.db)

	_, err := svc.Create(f.actor, &dto.CreateContractRequest{
		ClientID:     f.contract.ClientID,
		ContractName: "Backwards",
		StartDate:    utcDate(2026, 1, 1),
		EndDate:      utcDate(2025, 1, 1),
	})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindInvalidRange))
}

func TestContractUpdateCannotStrandRateCards(t *testing.T) {
	f := newFixture(t)
	svc := NewContractService(f.db)
	cards := NewRateCardService(f.db)

	createCard(t, f, cards, utcDate(2025, 3, 1), utcDate(2026, 3, 1))

	// Shrinking the contract under an existing rate card must fail.
	_, err := svc.Update(f.actor, f.contract.ID, &dto.UpdateContractRequest{
		EndDate: timep(utcDate(2025, 12, 1)),
	})
	require.Error(t, err)
	var ae *apperr.Error
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, apperr.KindOutOfBounds, ae.Kind)
	assert.Equal(t, "end_date", ae.Field)

	stored, err := svc.GetByID(f.contract.ID)
	require.NoError(t, err)
	assert.True(t, stored.EndDate.Equal(utcDate(2026, 12, 31)))

	// Shrinking within the card's bounds is fine.
	updated, err := svc.Update(f.actor, f.contract.ID, &dto.UpdateContractRequest{
		EndDate: timep(utcDate(2026, 6, 1)),
	})
	require.NoError(t, err)
	assert.True(t, updated.EndDate.Equal(utcDate(2026, 6, 1)))
}

func TestContractUpdateIgnoresArchivedRateCards(t *testing.T) {
	f := newFixture(t)
	svc := NewContractService(f.db)
	cards := NewRateCardService(f.db)

	card := createCard(t, f, cards, utcDate(2026, 1, 1), utcDate(2026, 12, 1))
	require.NoError(t, cards.Archive(f.actor, card.ID))

	_, err := svc.Update(f.actor, f.contract.ID, &dto.UpdateContractRequest{
		EndDate: timep(utcDate(2025, 12, 1)),
	})
	require.NoError(t, err)
}

func TestContractCreateMissingClient(t *testing.T) {
	f := newFixture(t)
	svc := NewContractService(f.db)

	req := &dto.CreateContractRequest{
		ContractName: "Orphan",
		StartDate:    utcDate(2025, 1, 1),
		EndDate:      utcDate(2026, 1, 1),
	}
	_, err := svc.Create(f.actor, req)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}
