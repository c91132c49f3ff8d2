package model

// StatusFound is the status every item starts with unless told otherwise.
const StatusFound = "Achado"

// Item is a row of the itens_achados_perdidos table.
//
// Every column except nome_item is nullable. Dates travel as text in the
// YYYY-MM-DD form PostgreSQL prints them in.
type Item struct {
	ID            int64   `json:"id_item"`
	Name          string  `json:"nome_item"`
	Description   *string `json:"descricao"`
	FoundAt       *string `json:"local_encontrado"`
	FoundDate     *string `json:"data_encontrado"`
	Status        *string `json:"status"`
	FinderName    *string `json:"nome_entregador"`
	FinderContact *string `json:"contato_entregador"`
	ClaimantName  *string `json:"nome_retirante"`
	ClaimedDate   *string `json:"data_retirada"`
}

// Merge applies a partial update on top of the stored item.
// Absent or empty fields keep their stored value, so an update can never
// clear a column back to null.
func (i Item) Merge(req *UpdateItemRequest) Item {
	return Item{
		ID:            i.ID,
		Name:          pick(req.Name, i.Name),
		Description:   pickNullable(req.Description, i.Description),
		FoundAt:       pickNullable(req.FoundAt, i.FoundAt),
		FoundDate:     pickNullable(req.FoundDate, i.FoundDate),
		Status:        pickNullable(req.Status, i.Status),
		FinderName:    pickNullable(req.FinderName, i.FinderName),
		FinderContact: pickNullable(req.FinderContact, i.FinderContact),
		ClaimantName:  pickNullable(req.ClaimantName, i.ClaimantName),
		ClaimedDate:   pickNullable(req.ClaimedDate, i.ClaimedDate),
	}
}

// ListItemsRequest carries nothing; the list is never filtered.
type ListItemsRequest struct{}

func (r *ListItemsRequest) Validate() error {
	return nil
}

// ItemIDRequest carries the raw :id path parameter.
type ItemIDRequest struct {
	ID string `param:"id" json:"-"`
}

func (r *ItemIDRequest) Validate() error {
	return nil
}

// CreateItemRequest only requires nome_item.
type CreateItemRequest struct {
	Name          string  `json:"nome_item" validate:"required"`
	Description   *string `json:"descricao"`
	FoundAt       *string `json:"local_encontrado"`
	FoundDate     *string `json:"data_encontrado"`
	Status        *string `json:"status"`
	FinderName    *string `json:"nome_entregador"`
	FinderContact *string `json:"contato_entregador"`
	ClaimantName  *string `json:"nome_retirante"`
	ClaimedDate   *string `json:"data_retirada"`
}

func (r *CreateItemRequest) Validate() error {
	return validate.Struct(r)
}

func (r *CreateItemRequest) ValidationMessage() string {
	return "O campo nome_item é obrigatório"
}

// ToItem converts the payload into an unsaved item. Empty optionals become
// null and a missing status becomes StatusFound.
func (r *CreateItemRequest) ToItem() Item {
	status := nullIfEmpty(r.Status)
	if status == nil {
		found := StatusFound
		status = &found
	}

	return Item{
		Name:          r.Name,
		Description:   nullIfEmpty(r.Description),
		FoundAt:       nullIfEmpty(r.FoundAt),
		FoundDate:     nullIfEmpty(r.FoundDate),
		Status:        status,
		FinderName:    nullIfEmpty(r.FinderName),
		FinderContact: nullIfEmpty(r.FinderContact),
		ClaimantName:  nullIfEmpty(r.ClaimantName),
		ClaimedDate:   nullIfEmpty(r.ClaimedDate),
	}
}

// UpdateItemRequest carries any subset of the nine writable fields.
type UpdateItemRequest struct {
	ID            string  `param:"id" json:"-"`
	Name          *string `json:"nome_item"`
	Description   *string `json:"descricao"`
	FoundAt       *string `json:"local_encontrado"`
	FoundDate     *string `json:"data_encontrado"`
	Status        *string `json:"status"`
	FinderName    *string `json:"nome_entregador"`
	FinderContact *string `json:"contato_entregador"`
	ClaimantName  *string `json:"nome_retirante"`
	ClaimedDate   *string `json:"data_retirada"`
}

func (r *UpdateItemRequest) Validate() error {
	return nil
}

// ItemResponse reports a mutation together with the affected row.
type ItemResponse struct {
	Message string `json:"mensagem"`
	Item    *Item  `json:"item"`
}
