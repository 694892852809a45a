package models

// Item status codes. Collected items never take part in exchange matching.
const (
	StatusNeeded       = 0
	StatusCollected    = 1
	StatusSurplus      = 2
	StatusNeededUrgent = 3
)

// User represents an account in the tracker.
type User struct {
	ID       int    `gorm:"column:id;primaryKey" json:"id"`
	Name     string `gorm:"column:name;type:varchar(255)" json:"name"`
	Email    string `gorm:"column:email;type:varchar(255);index" json:"email"`
	Logo     string `gorm:"column:logo;type:varchar(512)" json:"logo"`
	Phone    string `gorm:"column:phone;type:varchar(64)" json:"phone"`
	FbID     string `gorm:"column:fb_id;type:varchar(128)" json:"fb_id"`
	Type     int    `gorm:"column:type;default:1" json:"type"`
	PublicID string `gorm:"column:public_id;type:varchar(64)" json:"public_id"`
}

func (User) TableName() string {
	return "users"
}

// Category groups sets thematically (e.g. stickers, coins).
type Category struct {
	ID   int    `gorm:"column:id;primaryKey" json:"id"`
	Name string `gorm:"column:name;type:varchar(255)" json:"name"`
}

func (Category) TableName() string {
	return "categories"
}

// SetType classifies sets within a category and carries the primary sort key
// used when presenting exchange results.
type SetType struct {
	ID    int    `gorm:"column:id;primaryKey" json:"id"`
	Name  string `gorm:"column:name;type:varchar(255)" json:"name"`
	Order int    `gorm:"column:sort_order;default:0" json:"order"`
}

func (SetType) TableName() string {
	return "set_types"
}

// Set is a numbered collection (an album, a series) users track items against.
type Set struct {
	ID           int    `gorm:"column:id;primaryKey" json:"id"`
	Name         string `gorm:"column:name;type:varchar(255)" json:"name"`
	MinNumber    int    `gorm:"column:min_number;default:0" json:"min_number"`
	MaxNumber    int    `gorm:"column:max_number;default:0" json:"max_number"`
	Image        string `gorm:"column:image;type:varchar(512)" json:"image"`
	Link         string `gorm:"column:link;type:varchar(512)" json:"link"`
	Order        int    `gorm:"column:sort_order;default:0" json:"order"`
	Group        string `gorm:"column:set_group;type:varchar(255)" json:"group"`
	ExtraNumbers string `gorm:"column:extra_numbers;type:varchar(1024)" json:"extra_numbers"`
	SetTypeID    int    `gorm:"column:set_type_id;index" json:"set_type_id"`
	CategoryID   int    `gorm:"column:category_id;index" json:"category_id"`
}

func (Set) TableName() string {
	return "sets"
}

// Membership records that a user tracks a set. The set type and category are
// denormalized onto the row and must agree with the set's current
// classification; rows that disagree are treated as stale.
type Membership struct {
	ID         int `gorm:"column:id;primaryKey" json:"id"`
	UserID     int `gorm:"column:user_id;index" json:"user_id"`
	SetID      int `gorm:"column:set_id;index" json:"set_id"`
	SetTypeID  int `gorm:"column:set_type_id" json:"set_type_id"`
	CategoryID int `gorm:"column:category_id" json:"category_id"`
}

func (Membership) TableName() string {
	return "memberships"
}

// Item is one numbered position in a user's per-set inventory.
//
// Duplicate is nullable on purpose: legacy rows never had the flag set, and
// matching treats anything other than an explicit true as false. Keeping the
// column tri-state preserves what the client originally sent.
type Item struct {
	ID          int    `gorm:"column:id;primaryKey" json:"id"`
	Number      string `gorm:"column:number;type:varchar(32)" json:"number"`
	Status      int    `gorm:"column:status;default:0" json:"status"`
	Duplicate   *bool  `gorm:"column:duplicate" json:"duplicate"`
	Description string `gorm:"column:description;type:varchar(512)" json:"description"`
	SetID       int    `gorm:"column:set_id;index:idx_items_set_user" json:"set_id"`
	UserID      int    `gorm:"column:user_id;index:idx_items_set_user" json:"user_id"`
}

func (Item) TableName() string {
	return "items"
}

// IsDuplicate reduces the tri-state flag to the boolean class used as a
// matching key: only a literal true counts.
func (i Item) IsDuplicate() bool {
	return i.Duplicate != nil && *i.Duplicate
}

// All returns one instance of every persisted entity, in migration order.
func All() []any {
	return []any{
		&User{},
		&Category{},
		&SetType{},
		&Set{},
		&Membership{},
		&Item{},
	}
}
