package order

import "strings"

func isValidID(id string) bool {
	return strings.TrimSpace(id) != ""
}

func isValidAmount(amount int64) bool {
	return amount > 0
}

func isValidRating(rating int) bool {
	return rating >= 1 && rating <= 5
}
