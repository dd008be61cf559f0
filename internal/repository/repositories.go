package repository

// Repositories groups every repository so services receive one value.
type Repositories struct {
	Records *RecordsRepository
}

// NewRepositories builds the repositories over a shared handle, normally
// the server's pgx pool.
func NewRepositories(db DBTX) *Repositories {
	return &Repositories{
		Records: NewRecordsRepository(db),
	}
}
