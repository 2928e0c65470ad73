package core

import "strconv"

// Owner is either a user id or the unowned state; the zero value is
// unowned.
type Owner struct {
	userID uint
	owned  bool
}

func OwnedBy(userID uint) Owner {
	return Owner{userID: userID, owned: true}
}

func Unowned() Owner {
	return Owner{}
}

// UserID reports the owning user, ok is false for an unowned item.
func (o Owner) UserID() (id uint, ok bool) {
	return o.userID, o.owned
}

func (o Owner) String() string {
	if !o.owned {
		return "unowned"
	}
	return "user:" + strconv.FormatUint(uint64(o.userID), 10)
}

func ownerFromColumn(column *uint) Owner {
	if column == nil {
		return Unowned()
	}
	return OwnedBy(*column)
}

func (o Owner) column() *uint {
	if !o.owned {
		return nil
	}
	id := o.userID
	return &id
}

type User struct {
	ID       uint
	Email    string
	APIToken string
	IsActive bool
	Items    []Item
}

type Item struct {
	ID          uint
	Title       string
	Description string
	Owner       Owner
}

type NewUser struct {
	Email    string
	Password string
}

type NewItem struct {
	Title       string
	Description string
}

// Page selects Limit records after skipping Skip, in ascending id order.
type Page struct {
	Skip  int
	Limit int
}
