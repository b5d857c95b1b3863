package order

import (
	"marketplace/internal/entities"
)

func ToDomain(o *OrderDB) *entities.Order {
	if o == nil {
		return nil
	}

	return &entities.Order{
		ID:        o.ID,
		ServiceID: o.ServiceID,
		Buyer: entities.Participant{
			ID:     o.BuyerID,
			Name:   o.BuyerName,
			Avatar: o.BuyerAvatar,
		},
		Provider: entities.Participant{
			ID:     o.ProviderID,
			Name:   o.ProviderName,
			Avatar: o.ProviderAvatar,
		},
		Status:      entities.OrderStatusType(o.Status),
		BasePrice:   o.BasePrice,
		FinalPrice:  o.FinalPrice,
		PriceFixed:  o.PriceFixed,
		Note:        o.Note,
		Rating:      o.Rating,
		Review:      o.Review,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
		CompletedAt: o.CompletedAt,
	}
}

func FromDomain(order *entities.Order) *OrderDB {
	if order == nil {
		return nil
	}

	return &OrderDB{
		ID:             order.ID,
		ServiceID:      order.ServiceID,
		BuyerID:        order.Buyer.ID,
		BuyerName:      order.Buyer.Name,
		BuyerAvatar:    order.Buyer.Avatar,
		ProviderID:     order.Provider.ID,
		ProviderName:   order.Provider.Name,
		ProviderAvatar: order.Provider.Avatar,
		Status:         order.Status.String(),
		BasePrice:      order.BasePrice,
		FinalPrice:     order.FinalPrice,
		PriceFixed:     order.PriceFixed,
		Note:           order.Note,
		Rating:         order.Rating,
		Review:         order.Review,
		CreatedAt:      order.CreatedAt,
		UpdatedAt:      order.UpdatedAt,
		CompletedAt:    order.CompletedAt,
	}
}

func FromDomainModify(orderModify *entities.OrderModify) *OrderModifyDB {
	if orderModify == nil {
		return nil
	}
	orderDB := &OrderModifyDB{
		ID:          orderModify.ID,
		FinalPrice:  orderModify.FinalPrice,
		PriceFixed:  orderModify.PriceFixed,
		Rating:      orderModify.Rating,
		Review:      orderModify.Review,
		UpdatedAt:   orderModify.UpdatedAt,
		CompletedAt: orderModify.CompletedAt,
	}

	if orderModify.Status != nil {
		status := orderModify.Status.String()
		orderDB.Status = &status
	}

	return orderDB
}

func ToDomainList(ordersDB []OrderDB) []entities.Order {
	if len(ordersDB) == 0 {
		return []entities.Order{}
	}

	result := make([]entities.Order, len(ordersDB))
	for i, orderDB := range ordersDB {
		result[i] = *ToDomain(&orderDB)
	}
	return result
}
