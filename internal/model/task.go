package model

// Task - одна задача. Значение не меняется на месте: обновление
// собирает новый Task и записывает его под тем же ID.
type Task struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Describe  string `json:"describe"`
	Completed bool   `json:"completed"`
}

// TaskPayload - тело запроса как его прислал клиент. Указатели отличают
// пропущенное поле от нулевого значения.
type TaskPayload struct {
	Title     *string `json:"title"`
	Describe  *string `json:"describe"`
	Completed *bool   `json:"completed"`
}

// TaskInput - проверенный payload, все поля заполнены
type TaskInput struct {
	Title     string
	Describe  string
	Completed bool
}

// WithInput возвращает копию t с полями из in
func (t Task) WithInput(in TaskInput) Task {
	return Task{
		ID:        t.ID,
		Title:     in.Title,
		Describe:  in.Describe,
		Completed: in.Completed,
	}
}
