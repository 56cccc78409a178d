package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/amirasaad/banksim/pkg/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUoW_DoSharesTransaction(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)
	db, mock := newMockDB(t)
	uow := NewUoW(db)

	mock.ExpectBegin()
	mock.ExpectCommit()

	err := uow.Do(context.Background(), func(txUow repository.UnitOfWork) error {
		acctRepo, err := txUow.AccountRepository()
		require.NoError(err)
		_, ok := acctRepo.(*accountRepository)
		assert.True(ok)

		txRepo, err := txUow.TransactionRepository()
		require.NoError(err)
		_, ok = txRepo.(*transactionRepository)
		assert.True(ok)

		inner, ok := txUow.(*UoW)
		require.True(ok)
		assert.NotNil(inner.tx)
		assert.Same(inner.tx, inner.session())
		return nil
	})
	assert.NoError(err)
	assert.NoError(mock.ExpectationsWereMet())
}

func TestUoW_DoRollsBackOnError(t *testing.T) {
	db, mock := newMockDB(t)
	uow := NewUoW(db)

	mock.ExpectBegin()
	mock.ExpectRollback()

	boom := errors.New("boom")
	err := uow.Do(context.Background(), func(repository.UnitOfWork) error {
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUoW_RepositoriesOutsideDo(t *testing.T) {
	db, _ := newMockDB(t)
	uow := NewUoW(db)

	assert.Same(t, db, uow.session())
	repo, err := uow.AccountRepository()
	require.NoError(t, err)
	assert.NotNil(t, repo)
}
