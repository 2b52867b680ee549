package domain

import "fmt"

type Direction string

const (
	Increment Direction = "increment"
	Decrement Direction = "decrement"
)

func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case Increment, Decrement:
		return Direction(s), nil
	default:
		return "", fmt.Errorf("direction[%s] is not valid", s)
	}
}

// DecrementPolicy decides what a decrement does to a line item at quantity 1.
type DecrementPolicy string

const (
	// FloorAtOne leaves the item at quantity 1.
	FloorAtOne DecrementPolicy = "floor"
	// RemoveAtZero removes the item from the cart.
	RemoveAtZero DecrementPolicy = "remove"
)

func ParseDecrementPolicy(s string) (DecrementPolicy, error) {
	switch DecrementPolicy(s) {
	case FloorAtOne, RemoveAtZero:
		return DecrementPolicy(s), nil
	default:
		return "", fmt.Errorf("decrement policy[%s] is not valid", s)
	}
}
