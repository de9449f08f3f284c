package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/deppfellow/loan-backoffice/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolRepository_AutoForApplication(t *testing.T) {
	db, mock, mockDB := newMockDB(t)
	defer mockDB.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "Pool_AutoForApplication"($1, $2)`)).
		WithArgs(int64(100), int64(11)).
		WillReturnRows(sqlmock.NewRows([]string{"poolID"}).AddRow(5))

	rows, err := NewPoolRepository(db).AutoForApplication(context.Background(), 100, 11)

	require.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestThirdPartyRepository_TrackMyApplications(t *testing.T) {
	db, mock, mockDB := newMockDB(t)
	defer mockDB.Close()

	created := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "Report_TrackMyApplications_ByUserPartyRoleID"($1)`)).
		WithArgs(int64(31)).
		WillReturnRows(sqlmock.NewRows([]string{
			"applicationID", "borrowerName", "created", "loanAmount",
			"externalLeadID", "productCategoryID", "retailApplicationID", "applicationStatusTypeName",
		}).AddRow(100, "Jane Doe", created, "250000.00", "EL-9", 2, 700, "Submitted"))

	rows, err := NewThirdPartyRepository(db).TrackMyApplications(context.Background(), 31)

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(100), rows[0].ApplicationID)
	assert.Equal(t, "Jane Doe", rows[0].BorrowerName)
	assert.True(t, rows[0].LoanAmount.Valid)
	assert.Equal(t, "Submitted", rows[0].ApplicationStatusTypeName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLiabilityRepository_ListByHousehold(t *testing.T) {
	db, mock, mockDB := newMockDB(t)
	defer mockDB.Close()

	mock.ExpectQuery(`SELECT \* FROM "Liability" WHERE "Liability"\."HouseholdID" = \$1 AND "Liability"\."LiabilityTypeID" = \$2`).
		WithArgs(int64(55), int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"ID", "HouseholdID", "LiabilityTypeID", "Creditor", "Balance", "MonthlyPayment"}).
			AddRow(1, 55, 1, "Card Co", "1200.00", "60.00"))

	liabilities, err := NewLiabilityRepository(db).ListByHousehold(context.Background(), 55, model.DefaultLiabilityTypeID)

	require.NoError(t, err)
	require.Len(t, liabilities, 1)
	assert.Equal(t, "Card Co", *liabilities[0].Creditor)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPartyRoleRepository_ForExternalUser(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "PartyRole_RetrieveForExternalUser"($1)`)).
			WithArgs("user_2abc").
			WillReturnRows(sqlmock.NewRows([]string{"ID", "PartyID", "PartyRoleTypeID", "Name"}).AddRow(11, 3, 2, "Ann"))

		role, err := NewPartyRoleRepository(db).ForExternalUser(context.Background(), "user_2abc")

		require.NoError(t, err)
		require.NotNil(t, role)
		assert.Equal(t, int64(11), role.ID)
	})

	t.Run("unknown user", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()

		mock.ExpectQuery(`PartyRole_RetrieveForExternalUser`).
			WillReturnRows(sqlmock.NewRows([]string{"ID"}))

		role, err := NewPartyRoleRepository(db).ForExternalUser(context.Background(), "user_x")

		require.NoError(t, err)
		assert.Nil(t, role)
	})
}

func TestAuditRepository_Create(t *testing.T) {
	db, mock, mockDB := newMockDB(t)
	defer mockDB.Close()

	mock.ExpectExec(`INSERT INTO "service_audit" \("id","entity","entity_id","action","party_role_id","created_at"\)`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := NewAuditRepository(db).Create(context.Background(), &model.ServiceAudit{
		ID:          uuid.New(),
		Entity:      "deposit",
		EntityID:    42,
		Action:      model.AuditActionCreate,
		PartyRoleID: 11,
		CreatedAt:   time.Now(),
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
