package department

type Department struct {
	ID   int64  `json:"dept_id"`
	Name string `json:"dept_name"`
}
