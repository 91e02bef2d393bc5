package invoice_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/tempo/internal/invoice"
)

func TestService_Create(t *testing.T) {
	companyID := uuid.New()

	type testCase struct {
		name      string
		draft     func() invoice.Draft
		setupMock func(m *invoice.MockRepository, d invoice.Draft)
		wantErr   error
		wantField string
	}

	tests := []testCase{
		{
			name:  "Success",
			draft: validDraft,
			setupMock: func(m *invoice.MockRepository, d invoice.Draft) {
				m.EXPECT().GetClient(gomock.Any(), companyID, d.BilledTo.ID).Return(d.BilledTo, nil)
				m.EXPECT().InvoiceNumberExists(gomock.Any(), companyID, "INV-0001").Return(false, nil)
				m.EXPECT().
					CreateInvoice(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, inv *invoice.Invoice) error {
						inv.ID = uuid.New()
						return nil
					})
			},
		},
		{
			name: "InvalidDraftNeverTouchesRepo",
			draft: func() invoice.Draft {
				d := validDraft()
				d.InvoiceNumber = ""

				return d
			},
			wantField: "invoiceNumber",
		},
		{
			name:  "UnknownClient",
			draft: validDraft,
			setupMock: func(m *invoice.MockRepository, d invoice.Draft) {
				m.EXPECT().GetClient(gomock.Any(), companyID, d.BilledTo.ID).Return(nil, invoice.ErrNotFound)
			},
			wantField: "billedTo",
		},
		{
			name:  "DuplicateNumber",
			draft: validDraft,
			setupMock: func(m *invoice.MockRepository, d invoice.Draft) {
				m.EXPECT().GetClient(gomock.Any(), companyID, d.BilledTo.ID).Return(d.BilledTo, nil)
				m.EXPECT().InvoiceNumberExists(gomock.Any(), companyID, "INV-0001").Return(true, nil)
			},
			wantErr: invoice.ErrDuplicateNumber,
		},
		{
			name:  "DuplicateNumberOnInsert",
			draft: validDraft,
			setupMock: func(m *invoice.MockRepository, d invoice.Draft) {
				m.EXPECT().GetClient(gomock.Any(), companyID, d.BilledTo.ID).Return(d.BilledTo, nil)
				m.EXPECT().InvoiceNumberExists(gomock.Any(), companyID, "INV-0001").Return(false, nil)
				m.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).Return(invoice.ErrDuplicateNumber)
			},
			wantErr: invoice.ErrDuplicateNumber,
		},
		{
			name:  "RepoError",
			draft: validDraft,
			setupMock: func(m *invoice.MockRepository, d invoice.Draft) {
				m.EXPECT().GetClient(gomock.Any(), companyID, d.BilledTo.ID).Return(d.BilledTo, nil)
				m.EXPECT().InvoiceNumberExists(gomock.Any(), companyID, "INV-0001").Return(false, nil)
				m.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).Return(errors.New("db error"))
			},
			wantErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			repo := invoice.NewMockRepository(ctrl)
			d := tt.draft()

			if tt.setupMock != nil {
				tt.setupMock(repo, d)
			}

			svc := invoice.NewService(repo)
			got, err := svc.Create(context.Background(), companyID, d)

			switch {
			case tt.wantField != "":
				var verrs invoice.ValidationErrors
				require.ErrorAs(t, err, &verrs)
				assert.Contains(t, verrs, tt.wantField)
				assert.Nil(t, got)
			case tt.wantErr != nil:
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, got)
			default:
				require.NoError(t, err)
				assert.NotEqual(t, uuid.Nil, got.ID)
				assert.Equal(t, companyID, got.CompanyID)
				assert.Equal(t, d.BilledTo.ID, got.ClientID)
				assert.Equal(t, d.DueDate, got.DueDate)
			}
		})
	}
}

func TestService_NextInvoiceNumber(t *testing.T) {
	tests := []struct {
		latest string
		want   string
	}{
		{latest: "", want: "1"},
		{latest: "7", want: "8"},
		{latest: "INV-0009", want: "INV-0010"},
		{latest: "INV-99", want: "INV-100"},
		{latest: "DRAFT", want: "DRAFT-1"},
	}

	for _, tt := range tests {
		t.Run(tt.latest, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := invoice.NewMockRepository(ctrl)

			companyID := uuid.New()
			repo.EXPECT().LatestInvoiceNumber(gomock.Any(), companyID).Return(tt.latest, nil)

			got, err := invoice.NewService(repo).NextInvoiceNumber(context.Background(), companyID)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService_ImportClients(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := invoice.NewMockRepository(ctrl)
	companyID := uuid.New()

	repo.EXPECT().
		CreateClients(gomock.Any(), companyID, gomock.Len(2)).
		Return(nil)

	n, err := invoice.NewService(repo).ImportClients(context.Background(), companyID, []*invoice.Client{
		{Label: "Acme Corp"},
		{Label: "  "},
		{Label: "Globex", Phone: "555-0199"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestService_ImportClients_NothingToStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := invoice.NewMockRepository(ctrl)

	n, err := invoice.NewService(repo).ImportClients(context.Background(), uuid.New(), []*invoice.Client{{Label: ""}})
	require.NoError(t, err)
	assert.Zero(t, n)
}
