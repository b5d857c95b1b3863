package order

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"marketplace/internal/entities"
)

// Orders owns the full order lifecycle: creation from a catalog service or an
// accepted proposal, the negotiation state machine, and the read-side
// aggregates over completed orders. Every guard is checked before any field is
// mutated, and every state-changing update is status-guarded inside a
// serializable transaction, so a failed operation leaves the order untouched.
type Orders struct {
	repository Repository
	catalog    Catalog
	events     EventPublisher
	txManager  TxManager
}

func New(repository Repository, catalog Catalog, events EventPublisher, txManager TxManager) *Orders {
	return &Orders{
		repository: repository,
		catalog:    catalog,
		events:     events,
		txManager:  txManager,
	}
}

// CreateOrder opens an engagement for a listed catalog service. Orders on a
// fixed-price listing skip negotiation: the price is fixed at creation and the
// order starts in progress. Every other listing starts awaiting a price.
func (s *Orders) CreateOrder(ctx context.Context, serviceID string, buyer entities.Participant, note string) (*entities.Order, error) {
	if !isValidID(serviceID) || !isValidID(buyer.ID) {
		return nil, ErrMissingRequiredFields
	}

	listing, err := s.catalog.GetService(ctx, serviceID)
	if err != nil {
		return nil, fmt.Errorf("resolve service listing: %w", err)
	}

	order := newOrder(buyer, listing.Provider, listing.Price, note, &listing.ID)
	if listing.PriceType == entities.PriceFixed {
		fixAtCreation(&order)
	}

	return s.insert(ctx, order)
}

// CreateOrderFromProposal opens an engagement by accepting a provider's bid
// against the buyer's own request. The base price is the proposed price; the
// note falls back to the request description when empty.
func (s *Orders) CreateOrderFromProposal(ctx context.Context, proposalID string, buyer entities.Participant, note string) (*entities.Order, error) {
	if !isValidID(proposalID) || !isValidID(buyer.ID) {
		return nil, ErrMissingRequiredFields
	}

	proposal, err := s.catalog.GetProposal(ctx, proposalID)
	if err != nil {
		return nil, fmt.Errorf("resolve proposal: %w", err)
	}

	request, err := s.catalog.GetRequest(ctx, proposal.RequestID)
	if err != nil {
		return nil, fmt.Errorf("resolve request: %w", err)
	}
	if request.Requester.ID != buyer.ID {
		return nil, ErrForbidden
	}

	if note == "" {
		note = request.Description
	}

	order := newOrder(buyer, proposal.Provider, proposal.Price, note, nil)
	return s.insert(ctx, order)
}

// FixPrice converts the provisional base price into the binding final price
// and moves the order into progress. Provider-only, one-shot.
func (s *Orders) FixPrice(ctx context.Context, orderID string, amount int64, actingProviderID string) (*entities.Order, error) {
	if !isValidID(orderID) || !isValidID(actingProviderID) {
		return nil, ErrMissingRequiredFields
	}

	var updated *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, orderID)
		if err != nil {
			return err
		}
		if current.Provider.ID != actingProviderID {
			return ErrForbidden
		}
		if current.Status != entities.OrderAwaitingPrice || current.PriceFixed {
			return ErrInvalidTransition
		}
		if !isValidAmount(amount) {
			return ErrInvalidAmount
		}

		now := time.Now().UTC()
		newStatus := entities.OrderInProgress
		fixed := true
		updated, err = s.repository.UpdateWhereStatus(ctx, entities.OrderModify{
			ID:         &orderID,
			Status:     &newStatus,
			FinalPrice: &amount,
			PriceFixed: &fixed,
			UpdatedAt:  &now,
		}, entities.OrderAwaitingPrice)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("fix price: %w", err)
	}

	s.publish(ctx, updated)
	return updated, nil
}

// MarkWorkDone is the provider declaring the work finished; the order then
// waits for the buyer's confirmation.
func (s *Orders) MarkWorkDone(ctx context.Context, orderID string, actingProviderID string) (*entities.Order, error) {
	if !isValidID(orderID) || !isValidID(actingProviderID) {
		return nil, ErrMissingRequiredFields
	}

	var updated *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, orderID)
		if err != nil {
			return err
		}
		if current.Provider.ID != actingProviderID {
			return ErrForbidden
		}
		if current.Status != entities.OrderInProgress {
			return ErrInvalidTransition
		}

		now := time.Now().UTC()
		newStatus := entities.OrderAwaitingConfirmation
		updated, err = s.repository.UpdateWhereStatus(ctx, entities.OrderModify{
			ID:        &orderID,
			Status:    &newStatus,
			UpdatedAt: &now,
		}, entities.OrderInProgress)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("mark work done: %w", err)
	}

	s.publish(ctx, updated)
	return updated, nil
}

// ConfirmCompletion is the buyer accepting the delivered work, closing the
// order and capturing the rating and optional review in the same step.
func (s *Orders) ConfirmCompletion(ctx context.Context, orderID string, rating int, review *string, actingBuyerID string) (*entities.Order, error) {
	if !isValidID(orderID) || !isValidID(actingBuyerID) {
		return nil, ErrMissingRequiredFields
	}

	var updated *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, orderID)
		if err != nil {
			return err
		}
		if current.Buyer.ID != actingBuyerID {
			return ErrForbidden
		}
		if current.Status != entities.OrderAwaitingConfirmation {
			return ErrInvalidTransition
		}
		if !isValidRating(rating) {
			return ErrInvalidRating
		}

		now := time.Now().UTC()
		newStatus := entities.OrderCompleted
		updated, err = s.repository.UpdateWhereStatus(ctx, entities.OrderModify{
			ID:          &orderID,
			Status:      &newStatus,
			Rating:      &rating,
			Review:      review,
			UpdatedAt:   &now,
			CompletedAt: &now,
		}, entities.OrderAwaitingConfirmation)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("confirm completion: %w", err)
	}

	s.publish(ctx, updated)
	return updated, nil
}

// Cancel moves a non-terminal order to cancelled. Either participant may
// cancel. An already fixed price stays on the record.
func (s *Orders) Cancel(ctx context.Context, orderID string, actingUserID string) (*entities.Order, error) {
	if !isValidID(orderID) || !isValidID(actingUserID) {
		return nil, ErrMissingRequiredFields
	}

	var updated *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, orderID)
		if err != nil {
			return err
		}
		if current.Buyer.ID != actingUserID && current.Provider.ID != actingUserID {
			return ErrForbidden
		}
		if current.Status.Terminal() {
			return ErrInvalidTransition
		}

		now := time.Now().UTC()
		newStatus := entities.OrderCancelled
		updated, err = s.repository.UpdateWhereStatus(ctx, entities.OrderModify{
			ID:        &orderID,
			Status:    &newStatus,
			UpdatedAt: &now,
		}, current.Status)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("cancel order: %w", err)
	}

	s.publish(ctx, updated)
	return updated, nil
}

func (s *Orders) GetOrder(ctx context.Context, orderID string) (*entities.Order, error) {
	if !isValidID(orderID) {
		return nil, ErrMissingRequiredFields
	}

	order, err := s.repository.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	return order, nil
}

func (s *Orders) OrdersForBuyer(ctx context.Context, buyerID string) ([]entities.Order, error) {
	if !isValidID(buyerID) {
		return nil, ErrMissingRequiredFields
	}

	orders, err := s.repository.GetByBuyer(ctx, buyerID)
	if err != nil {
		return nil, fmt.Errorf("orders for buyer: %w", err)
	}
	return orders, nil
}

func (s *Orders) OrdersForProvider(ctx context.Context, providerID string) ([]entities.Order, error) {
	if !isValidID(providerID) {
		return nil, ErrMissingRequiredFields
	}

	orders, err := s.repository.GetByProvider(ctx, providerID)
	if err != nil {
		return nil, fmt.Errorf("orders for provider: %w", err)
	}
	return orders, nil
}

func (s *Orders) ProviderStats(ctx context.Context, providerID string) (*entities.ProviderStats, error) {
	if !isValidID(providerID) {
		return nil, ErrMissingRequiredFields
	}

	stats, err := s.repository.ProviderStats(ctx, providerID)
	if err != nil {
		return nil, fmt.Errorf("provider stats: %w", err)
	}
	return stats, nil
}

func (s *Orders) TotalEarnings(ctx context.Context, providerID string) (int64, error) {
	stats, err := s.ProviderStats(ctx, providerID)
	if err != nil {
		return 0, err
	}
	return stats.TotalEarnings, nil
}

func (s *Orders) AverageRating(ctx context.Context, providerID string) (float64, error) {
	stats, err := s.ProviderStats(ctx, providerID)
	if err != nil {
		return 0, err
	}
	return stats.AverageRating, nil
}

func (s *Orders) ActiveOrderCount(ctx context.Context, participantID string) (int64, error) {
	if !isValidID(participantID) {
		return 0, ErrMissingRequiredFields
	}

	count, err := s.repository.ActiveCountByParticipant(ctx, participantID)
	if err != nil {
		return 0, fmt.Errorf("active order count: %w", err)
	}
	return count, nil
}

func (s *Orders) StatusCounts(ctx context.Context) (map[entities.OrderStatusType]int64, error) {
	counts, err := s.repository.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("status counts: %w", err)
	}
	return counts, nil
}

func newOrder(buyer, provider entities.Participant, basePrice int64, note string, serviceID *string) entities.Order {
	now := time.Now().UTC()
	return entities.Order{
		ID:        uuid.NewString(),
		ServiceID: serviceID,
		Buyer:     buyer,
		Provider:  provider,
		Status:    entities.OrderAwaitingPrice,
		BasePrice: basePrice,
		Note:      note,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func fixAtCreation(order *entities.Order) {
	finalPrice := order.BasePrice
	order.FinalPrice = &finalPrice
	order.PriceFixed = true
	order.Status = entities.OrderInProgress
}

func (s *Orders) insert(ctx context.Context, order entities.Order) (*entities.Order, error) {
	if order.Buyer.ID == order.Provider.ID {
		return nil, ErrInvalidParticipants
	}
	if !isValidAmount(order.BasePrice) {
		return nil, ErrInvalidAmount
	}

	created, err := s.repository.Create(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	s.publish(ctx, created)
	return created, nil
}

func (s *Orders) publish(ctx context.Context, order *entities.Order) {
	if order == nil {
		return
	}

	s.events.PublishStatusChanged(ctx, entities.OrderStatusChanged{
		OrderID:    order.ID,
		Status:     order.Status,
		BuyerID:    order.Buyer.ID,
		ProviderID: order.Provider.ID,
		FinalPrice: order.FinalPrice,
		OccurredAt: order.UpdatedAt,
	})
}
