// Package sheet declares the character sheet record.
package sheet

// Sheet is one user's character: a name, hit points and an inventory.
type Sheet struct {
	UserID    int64    `json:"userId"`
	Name      string   `json:"name"`
	HP        int      `json:"hp"`
	Inventory []string `json:"inventory"`
}
