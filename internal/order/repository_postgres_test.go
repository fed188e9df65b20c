package order

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func newMockRepo(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewPostgresRepository(db), mock
}

func orderRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"order_id", "reference", "product_id", "buyer_id", "seller_id",
		"price", "delivery_fee", "status", "satisfaction", "created_at", "delivered_at",
	})
}

func TestGetByReference(t *testing.T) {
	repo, mock := newMockRepo(t)
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery("FROM orders WHERE reference").WithArgs("ref-abc").
		WillReturnRows(orderRows().AddRow(4, "ref-abc", 2, 10, 20, 5000.0, 500.0, "UNDER_REVIEW", "PENDING", created, nil))

	ord, err := repo.GetByReference("ref-abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ord.ID != 4 || ord.Status != StatusUnderReview {
		t.Fatalf("unexpected order %+v", ord)
	}
	if ord.TotalAmount != 5500 {
		t.Fatalf("total not derived from price+fee, got %v", ord.TotalAmount)
	}
	if ord.DeliveredAt != nil {
		t.Fatalf("deliveredAt should be nil before delivery")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestGetByIDNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("FROM orders WHERE order_id").WithArgs(99).
		WillReturnRows(orderRows())

	if _, err := repo.GetByID(99); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMarkPaidConditionalWrite(t *testing.T) {
	repo, mock := newMockRepo(t)
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery("UPDATE orders SET status = (.+) AND status = (.+) RETURNING").
		WithArgs("PAID", "ref-x", "UNDER_REVIEW").
		WillReturnRows(orderRows().AddRow(4, "ref-x", 2, 10, 20, 100.0, 10.0, "PAID", "PENDING", created, nil))

	ord, err := repo.MarkPaid("ref-x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ord.Status != StatusPaid || ord.ID != 4 {
		t.Fatalf("unexpected order %+v", ord)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestMarkPaidLosesToEarlierWrite(t *testing.T) {
	repo, mock := newMockRepo(t)
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	// the conditional update matches no row because the order is already PAID
	mock.ExpectQuery("UPDATE orders SET status = (.+) AND status = (.+) RETURNING").
		WithArgs("PAID", "ref-x", "UNDER_REVIEW").
		WillReturnRows(orderRows())
	mock.ExpectQuery("FROM orders WHERE reference").WithArgs("ref-x").
		WillReturnRows(orderRows().AddRow(4, "ref-x", 2, 10, 20, 100.0, 10.0, "PAID", "PENDING", created, nil))

	ord, err := repo.MarkPaid("ref-x")
	if err != ErrAlreadyVerified {
		t.Fatalf("expected ErrAlreadyVerified, got %v", err)
	}
	if ord.Status != StatusPaid {
		t.Fatalf("loser must still see the current order, got %+v", ord)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestMarkPaidUnknownReference(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("UPDATE orders SET status = (.+) AND status = (.+) RETURNING").
		WithArgs("PAID", "no-such", "UNDER_REVIEW").
		WillReturnRows(orderRows())
	mock.ExpectQuery("FROM orders WHERE reference").WithArgs("no-such").
		WillReturnRows(orderRows())

	if _, err := repo.MarkPaid("no-such"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateStatusMissingOrder(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("UPDATE orders SET status").WithArgs("PAID", 7).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.UpdateStatus(7, StatusPaid); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSetDeliveredOnlyOnce(t *testing.T) {
	repo, mock := newMockRepo(t)
	at := time.Date(2026, 3, 1, 15, 0, 0, 0, time.UTC)

	mock.ExpectExec("delivered_at IS NULL").WithArgs("DELIVERED", at, 3).
		WillReturnResult(sqlmock.NewResult(0, 1))
	if err := repo.SetDelivered(3, at); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// second confirmation matches no row because delivered_at is set
	mock.ExpectExec("delivered_at IS NULL").WithArgs("DELIVERED", at, 3).
		WillReturnResult(sqlmock.NewResult(0, 0))
	if err := repo.SetDelivered(3, at); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound on repeat, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreateReturnsID(t *testing.T) {
	repo, mock := newMockRepo(t)
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery("INSERT INTO orders").
		WithArgs("ref-1", 2, 10, 20, 100.0, 10.0, "UNDER_REVIEW", "PENDING", created).
		WillReturnRows(sqlmock.NewRows([]string{"order_id"}).AddRow(11))

	ord, err := repo.Create(Order{
		Reference:    "ref-1",
		ProductID:    2,
		BuyerID:      10,
		SellerID:     20,
		Price:        100,
		DeliveryFee:  10,
		Status:       StatusUnderReview,
		Satisfaction: SatisfactionPending,
		CreatedAt:    created,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ord.ID != 11 || ord.TotalAmount != 110 {
		t.Fatalf("unexpected order %+v", ord)
	}
}
