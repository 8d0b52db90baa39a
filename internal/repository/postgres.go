package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"auction-engine/internal/auctionerrors"
	"auction-engine/internal/models"
)

// PostgresRepo is the sqlx-backed AuctionDB. Lifecycle transitions and the
// bid write use conditional UPDATEs so multiple server instances can share
// one database without double-applying a transition.
type PostgresRepo struct {
	db *sqlx.DB
}

// NewPostgresRepo wraps an open connection pool.
func NewPostgresRepo(db *sqlx.DB) *PostgresRepo {
	return &PostgresRepo{db: db}
}

type auctionRow struct {
	ID              string              `db:"id"`
	ProductRef      string              `db:"product_ref"`
	SellerID        string              `db:"seller_id"`
	Status          string              `db:"status"`
	StartingPrice   decimal.Decimal     `db:"starting_price"`
	MinBidIncrement decimal.Decimal     `db:"min_bid_increment"`
	HighestBid      decimal.NullDecimal `db:"highest_bid"`
	HighestBidderID sql.NullString      `db:"highest_bidder_id"`
	DurationSeconds int                 `db:"duration_seconds"`
	ScheduledStart  sql.NullTime        `db:"scheduled_start"`
	EndDate         sql.NullTime        `db:"end_date"`
	Version         int                 `db:"version"`
	CreatedAt       time.Time           `db:"created_at"`
}

func (r auctionRow) toModel() models.Auction {
	a := models.Auction{
		ID:              r.ID,
		ProductRef:      r.ProductRef,
		SellerID:        r.SellerID,
		Status:          models.AuctionStatus(r.Status),
		StartingPrice:   r.StartingPrice,
		MinBidIncrement: r.MinBidIncrement,
		DurationSeconds: r.DurationSeconds,
		Version:         r.Version,
		CreatedAt:       r.CreatedAt,
	}
	if r.HighestBid.Valid {
		v := r.HighestBid.Decimal
		a.HighestBid = &v
	}
	if r.HighestBidderID.Valid {
		a.HighestBidderID = r.HighestBidderID.String
	}
	if r.ScheduledStart.Valid {
		t := r.ScheduledStart.Time
		a.ScheduledStart = &t
	}
	if r.EndDate.Valid {
		t := r.EndDate.Time
		a.EndDate = &t
	}
	return a
}

type bidRow struct {
	ID             string          `db:"id"`
	AuctionID      string          `db:"auction_id"`
	BidderID       string          `db:"bidder_id"`
	Amount         decimal.Decimal `db:"amount"`
	IdempotencyKey sql.NullString  `db:"idempotency_key"`
	CreatedAt      time.Time       `db:"created_at"`
}

func (r bidRow) toModel() models.Bid {
	b := models.Bid{
		BidID:     r.ID,
		AuctionID: r.AuctionID,
		BidderID:  r.BidderID,
		Amount:    r.Amount,
		CreatedAt: r.CreatedAt,
	}
	if r.IdempotencyKey.Valid {
		b.IdempotencyKey = r.IdempotencyKey.String
	}
	return b
}

func (s *PostgresRepo) CreateAuction(ctx context.Context, a *models.Auction) error {
	query := `
        INSERT INTO auction
            (id, product_ref, seller_id, status, starting_price, min_bid_increment,
             duration_seconds, scheduled_start, version)
        VALUES
            ($1, $2, $3, $4, $5, $6, $7, $8, 1)
        RETURNING created_at`
	err := s.db.QueryRowContext(ctx, query,
		a.ID, a.ProductRef, a.SellerID, a.Status, a.StartingPrice, a.MinBidIncrement,
		a.DurationSeconds, a.ScheduledStart).
		Scan(&a.CreatedAt)
	if err != nil {
		return fmt.Errorf("create auction %s: %w", a.ID, err)
	}
	a.Version = 1
	return nil
}

func (s *PostgresRepo) GetAuction(ctx context.Context, auctionID string) (models.Auction, error) {
	var row auctionRow
	query := `SELECT * FROM auction WHERE id=$1`
	err := s.db.GetContext(ctx, &row, query, auctionID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, auctionerrors.ErrNotFound)
	}
	if err != nil {
		return models.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, err)
	}
	return row.toModel(), nil
}

func (s *PostgresRepo) ActivateAuction(ctx context.Context, auctionID string, endDate time.Time) error {
	query := `
        UPDATE auction
        SET status=$2, end_date=$3, version=version+1
        WHERE id=$1 AND status=$4`
	res, err := s.db.ExecContext(ctx, query, auctionID, models.StatusActive, endDate, models.StatusPending)
	if err != nil {
		return fmt.Errorf("activate auction %s: %w", auctionID, err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("activate auction %s: %w", auctionID, err)
	}
	if rows == 0 {
		if _, err := s.GetAuction(ctx, auctionID); err != nil {
			return err
		}
		return fmt.Errorf("activate auction %s: %w", auctionID, auctionerrors.ErrInvalidStateTransition)
	}
	return nil
}

func (s *PostgresRepo) UpdateAuctionSettings(ctx context.Context, auctionID string, minBidIncrement *decimal.Decimal, durationSeconds *int) error {
	query := `
        UPDATE auction
        SET min_bid_increment = COALESCE($2::numeric, min_bid_increment),
            duration_seconds  = COALESCE($3::integer, duration_seconds),
            version = version + 1
        WHERE id=$1 AND status=$4
          AND NOT EXISTS (SELECT 1 FROM bid WHERE auction_id=$1)`
	res, err := s.db.ExecContext(ctx, query, auctionID, minBidIncrement, durationSeconds, models.StatusPending)
	if err != nil {
		return fmt.Errorf("update settings for auction %s: %w", auctionID, err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update settings for auction %s: %w", auctionID, err)
	}
	if rows > 0 {
		return nil
	}
	a, err := s.GetAuction(ctx, auctionID)
	if err != nil {
		return err
	}
	if a.Status != models.StatusPending {
		return fmt.Errorf("update settings for auction %s in status %s: %w",
			auctionID, a.Status, auctionerrors.ErrInvalidStateTransition)
	}
	return fmt.Errorf("update settings for auction %s: %w", auctionID, auctionerrors.ErrHasBids)
}

func (s *PostgresRepo) ListActiveAuctions(ctx context.Context, limit, offset int) ([]models.Auction, error) {
	query := `
        SELECT * FROM auction
        WHERE status=$1
        ORDER BY end_date ASC, id ASC
        LIMIT $2 OFFSET $3`
	rows := []auctionRow{}
	if err := s.db.SelectContext(ctx, &rows, query, models.StatusActive, limit, offset); err != nil {
		return nil, fmt.Errorf("list active auctions: %w", err)
	}
	auctions := make([]models.Auction, 0, len(rows))
	for _, row := range rows {
		auctions = append(auctions, row.toModel())
	}
	return auctions, nil
}

func (s *PostgresRepo) ActivateDue(ctx context.Context, now time.Time) ([]models.Auction, error) {
	query := `
        UPDATE auction
        SET status=$1,
            end_date = $2::timestamptz + make_interval(secs => duration_seconds),
            version = version + 1
        WHERE status=$3 AND scheduled_start IS NOT NULL AND scheduled_start <= $2
        RETURNING *`
	rows := []auctionRow{}
	if err := s.db.SelectContext(ctx, &rows, query, models.StatusActive, now, models.StatusPending); err != nil {
		return nil, fmt.Errorf("activate due auctions: %w", err)
	}
	auctions := make([]models.Auction, 0, len(rows))
	for _, row := range rows {
		auctions = append(auctions, row.toModel())
	}
	return auctions, nil
}

func (s *PostgresRepo) EndExpired(ctx context.Context, now time.Time) ([]models.Auction, error) {
	query := `
        UPDATE auction
        SET status=$1, version=version+1
        WHERE status=$2 AND end_date <= $3
        RETURNING *`
	rows := []auctionRow{}
	if err := s.db.SelectContext(ctx, &rows, query, models.StatusEnded, models.StatusActive, now); err != nil {
		return nil, fmt.Errorf("end expired auctions: %w", err)
	}
	auctions := make([]models.Auction, 0, len(rows))
	for _, row := range rows {
		auctions = append(auctions, row.toModel())
	}
	return auctions, nil
}

func (s *PostgresRepo) RecordBid(ctx context.Context, bid models.Bid, auctionVersion int) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("record bid %s: %w", bid.BidID, err)
	}
	defer tx.Rollback()

	update := `
        UPDATE auction
        SET highest_bid=$2, highest_bidder_id=$3, version=version+1
        WHERE id=$1 AND version=$4`
	res, err := tx.ExecContext(ctx, update, bid.AuctionID, bid.Amount, bid.BidderID, auctionVersion)
	if err != nil {
		return fmt.Errorf("record bid %s: %w", bid.BidID, err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("record bid %s: %w", bid.BidID, err)
	}
	if rows == 0 {
		return fmt.Errorf("record bid %s for auction %s at version %d: %w",
			bid.BidID, bid.AuctionID, auctionVersion, auctionerrors.ErrBusy)
	}

	insert := `
        INSERT INTO bid (id, auction_id, bidder_id, amount, idempotency_key, created_at)
        VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6)`
	if _, err := tx.ExecContext(ctx, insert,
		bid.BidID, bid.AuctionID, bid.BidderID, bid.Amount, bid.IdempotencyKey, bid.CreatedAt); err != nil {
		return fmt.Errorf("record bid %s: %w", bid.BidID, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("record bid %s: %w", bid.BidID, err)
	}
	return nil
}

func (s *PostgresRepo) GetBidByIdempotencyKey(ctx context.Context, key string) (models.Bid, error) {
	var row bidRow
	query := `SELECT * FROM bid WHERE idempotency_key=$1`
	err := s.db.GetContext(ctx, &row, query, key)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Bid{}, fmt.Errorf("bid with idempotency key %s: %w", key, auctionerrors.ErrNotFound)
	}
	if err != nil {
		return models.Bid{}, fmt.Errorf("bid with idempotency key %s: %w", key, err)
	}
	return row.toModel(), nil
}

func (s *PostgresRepo) ListBids(ctx context.Context, auctionID string) ([]models.Bid, error) {
	if _, err := s.GetAuction(ctx, auctionID); err != nil {
		return nil, err
	}
	query := `
        SELECT * FROM bid
        WHERE auction_id=$1
        ORDER BY created_at ASC, id ASC`
	rows := []bidRow{}
	if err := s.db.SelectContext(ctx, &rows, query, auctionID); err != nil {
		return nil, fmt.Errorf("list bids for auction %s: %w", auctionID, err)
	}
	bids := make([]models.Bid, 0, len(rows))
	for _, row := range rows {
		bids = append(bids, row.toModel())
	}
	return bids, nil
}

func (s *PostgresRepo) CountBids(ctx context.Context, auctionID string) (int, error) {
	var count int
	query := `SELECT COUNT(1) FROM bid WHERE auction_id=$1`
	if err := s.db.GetContext(ctx, &count, query, auctionID); err != nil {
		return 0, fmt.Errorf("count bids for auction %s: %w", auctionID, err)
	}
	return count, nil
}

func (s *PostgresRepo) UpsertInstruction(ctx context.Context, ins models.AutoBidInstruction) error {
	query := `
        INSERT INTO auto_bid_instruction
            (auction_id, bidder_id, max_bid_amount, increment_amount, current_bid_amount, is_active)
        VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (auction_id, bidder_id) DO UPDATE
        SET max_bid_amount = EXCLUDED.max_bid_amount,
            increment_amount = EXCLUDED.increment_amount,
            current_bid_amount = EXCLUDED.current_bid_amount,
            is_active = EXCLUDED.is_active`
	_, err := s.db.ExecContext(ctx, query,
		ins.AuctionID, ins.BidderID, ins.MaxBidAmount, ins.IncrementAmount, ins.CurrentBidAmount, ins.IsActive)
	if err != nil {
		return fmt.Errorf("upsert instruction for auction %s bidder %s: %w", ins.AuctionID, ins.BidderID, err)
	}
	return nil
}

func (s *PostgresRepo) GetInstruction(ctx context.Context, auctionID, bidderID string) (models.AutoBidInstruction, error) {
	var ins models.AutoBidInstruction
	query := `SELECT * FROM auto_bid_instruction WHERE auction_id=$1 AND bidder_id=$2`
	err := s.db.GetContext(ctx, &ins, query, auctionID, bidderID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.AutoBidInstruction{}, fmt.Errorf("instruction for auction %s bidder %s: %w",
			auctionID, bidderID, auctionerrors.ErrNotFound)
	}
	if err != nil {
		return models.AutoBidInstruction{}, fmt.Errorf("instruction for auction %s bidder %s: %w",
			auctionID, bidderID, err)
	}
	return ins, nil
}

func (s *PostgresRepo) ListInstructionsForAuction(ctx context.Context, auctionID string) ([]models.AutoBidInstruction, error) {
	query := `
        SELECT * FROM auto_bid_instruction
        WHERE auction_id=$1
        ORDER BY bidder_id ASC`
	instructions := []models.AutoBidInstruction{}
	if err := s.db.SelectContext(ctx, &instructions, query, auctionID); err != nil {
		return nil, fmt.Errorf("list instructions for auction %s: %w", auctionID, err)
	}
	return instructions, nil
}

func (s *PostgresRepo) DeactivateInstruction(ctx context.Context, auctionID, bidderID string) error {
	query := `UPDATE auto_bid_instruction SET is_active=FALSE WHERE auction_id=$1 AND bidder_id=$2`
	res, err := s.db.ExecContext(ctx, query, auctionID, bidderID)
	if err != nil {
		return fmt.Errorf("deactivate instruction for auction %s bidder %s: %w", auctionID, bidderID, err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deactivate instruction for auction %s bidder %s: %w", auctionID, bidderID, err)
	}
	if rows == 0 {
		return fmt.Errorf("instruction for auction %s bidder %s: %w", auctionID, bidderID, auctionerrors.ErrNotFound)
	}
	return nil
}

func (s *PostgresRepo) DeactivateInstructionsForAuction(ctx context.Context, auctionID string) error {
	query := `UPDATE auto_bid_instruction SET is_active=FALSE WHERE auction_id=$1 AND is_active`
	if _, err := s.db.ExecContext(ctx, query, auctionID); err != nil {
		return fmt.Errorf("deactivate instructions for auction %s: %w", auctionID, err)
	}
	return nil
}

func (s *PostgresRepo) SetInstructionCurrentBid(ctx context.Context, auctionID, bidderID string, amount decimal.Decimal) error {
	query := `UPDATE auto_bid_instruction SET current_bid_amount=$3 WHERE auction_id=$1 AND bidder_id=$2`
	res, err := s.db.ExecContext(ctx, query, auctionID, bidderID, amount)
	if err != nil {
		return fmt.Errorf("set current bid for auction %s bidder %s: %w", auctionID, bidderID, err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("set current bid for auction %s bidder %s: %w", auctionID, bidderID, err)
	}
	if rows == 0 {
		return fmt.Errorf("instruction for auction %s bidder %s: %w", auctionID, bidderID, auctionerrors.ErrNotFound)
	}
	return nil
}
