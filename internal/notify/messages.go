package notify

import "fmt"

const (
	MsgItemRemoved      = "Item removed from cart"
	MsgCartCleared      = "Cart cleared"
	MsgQuantityIncrease = "Item quantity increased"
	MsgQuantityDecrease = "Item quantity decreased"
)

func MsgAdded(productName string) string {
	return fmt.Sprintf("%s added to cart!", productName)
}
