package entities

type Publisher struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"size:50;not null" json:"name"`
}

type Book struct {
	ID          uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string     `gorm:"size:50;not null" json:"title"`
	PublisherID uint       `gorm:"column:id_publisher;not null;index" json:"id_publisher"`
	Publisher   *Publisher `gorm:"foreignKey:PublisherID" json:"publisher,omitempty"`
}

type Shop struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"size:30;not null" json:"name"`
}

// Stock is the number of copies of one book available in one shop.
// At most one row exists per (shop, book) pair.
type Stock struct {
	ID     uint  `gorm:"primaryKey;autoIncrement" json:"id"`
	ShopID uint  `gorm:"column:id_shop;not null;index" json:"id_shop"`
	BookID uint  `gorm:"column:id_book;not null;index" json:"id_book"`
	Count  int   `gorm:"column:count;not null" json:"count"`
	Shop   *Shop `gorm:"foreignKey:ShopID" json:"shop,omitempty"`
	Book   *Book `gorm:"foreignKey:BookID" json:"book,omitempty"`
}

func (Publisher) TableName() string {
	return "publisher"
}

func (Book) TableName() string {
	return "book"
}

func (Shop) TableName() string {
	return "shop"
}

func (Stock) TableName() string {
	return "stock"
}
