package model

// Question is a row of the questoes table.
type Question struct {
	ID        int64  `json:"id"`
	Statement string `json:"enunciado"`
	Subject   string `json:"disciplina"`
	Topic     string `json:"tema"`
	Level     string `json:"nivel"`
}

// Merge applies a partial update on top of the stored question.
// Absent or empty fields keep their stored value; the id never changes.
func (q Question) Merge(req *UpdateQuestionRequest) Question {
	return Question{
		ID:        q.ID,
		Statement: pick(req.Statement, q.Statement),
		Subject:   pick(req.Subject, q.Subject),
		Topic:     pick(req.Topic, q.Topic),
		Level:     pick(req.Level, q.Level),
	}
}

// ListQuestionsRequest has no parameters.
type ListQuestionsRequest struct{}

func (r *ListQuestionsRequest) Validate() error {
	return nil
}

// QuestionIDRequest addresses a single question by its path id.
type QuestionIDRequest struct {
	ID string `param:"id" json:"-"`
}

func (r *QuestionIDRequest) Validate() error {
	return nil
}

// CreateQuestionRequest requires all four fields to be present and non-empty.
type CreateQuestionRequest struct {
	Statement string `json:"enunciado" validate:"required"`
	Subject   string `json:"disciplina" validate:"required"`
	Topic     string `json:"tema" validate:"required"`
	Level     string `json:"nivel" validate:"required"`
}

func (r *CreateQuestionRequest) Validate() error {
	return validate.Struct(r)
}

func (r *CreateQuestionRequest) ValidationMessage() string {
	return "Os campos enunciado, disciplina, tema e nivel são obrigatórios"
}

// ToQuestion converts the payload into an unsaved question.
func (r *CreateQuestionRequest) ToQuestion() Question {
	return Question{
		Statement: r.Statement,
		Subject:   r.Subject,
		Topic:     r.Topic,
		Level:     r.Level,
	}
}

// UpdateQuestionRequest carries any subset of the four fields.
type UpdateQuestionRequest struct {
	ID        string  `param:"id" json:"-"`
	Statement *string `json:"enunciado"`
	Subject   *string `json:"disciplina"`
	Topic     *string `json:"tema"`
	Level     *string `json:"nivel"`
}

func (r *UpdateQuestionRequest) Validate() error {
	return nil
}

// QuestionCreatedResponse reports a successful insert with its generated id.
type QuestionCreatedResponse struct {
	Message string `json:"mensagem"`
	ID      int64  `json:"id"`
}
