package services

import (
	"context"
	"database/sql"
	"sort"

	"github.com/matiscalella/lms/pkg/database"
	"github.com/matiscalella/lms/services/catalog/domain"
	"github.com/matiscalella/lms/services/catalog/domain/models"
)

// memStore is the shared in-memory backing state for the fake repositories.
// Books are stored without their Record pointer; hydration happens on read,
// like the SQL LEFT JOIN.
type memStore struct {
	books      map[int64]*models.Book
	records    map[int64]*models.BibliographicRecord
	nextBookID int64
	nextRecID  int64
}

func newMemStore() *memStore {
	return &memStore{
		books:   make(map[int64]*models.Book),
		records: make(map[int64]*models.BibliographicRecord),
	}
}

func cloneBook(b *models.Book) *models.Book {
	c := *b
	c.Record = nil
	if b.Publisher != nil {
		v := *b.Publisher
		c.Publisher = &v
	}
	if b.PublicationYear != nil {
		v := *b.PublicationYear
		c.PublicationYear = &v
	}
	return &c
}

func cloneRecord(r *models.BibliographicRecord) *models.BibliographicRecord {
	c := *r
	for src, dst := range map[*string]**string{
		r.ISBN: &c.ISBN, r.DeweyClass: &c.DeweyClass,
		r.ShelfLocation: &c.ShelfLocation, r.Language: &c.Language,
	} {
		if src != nil {
			v := *src
			*dst = &v
		}
	}
	if r.BookID != nil {
		v := *r.BookID
		c.BookID = &v
	}
	return &c
}

func (s *memStore) snapshot() *memStore {
	snap := newMemStore()
	snap.nextBookID = s.nextBookID
	snap.nextRecID = s.nextRecID
	for id, b := range s.books {
		snap.books[id] = cloneBook(b)
	}
	for id, r := range s.records {
		snap.records[id] = cloneRecord(r)
	}
	return snap
}

func (s *memStore) restore(snap *memStore) {
	s.nextBookID = snap.nextBookID
	s.nextRecID = snap.nextRecID
	s.books = make(map[int64]*models.Book, len(snap.books))
	s.records = make(map[int64]*models.BibliographicRecord, len(snap.records))
	for id, b := range snap.books {
		s.books[id] = cloneBook(b)
	}
	for id, r := range snap.records {
		s.records[id] = cloneRecord(r)
	}
}

// liveRecordForBook returns the live record linked to bookID, if any.
func (s *memStore) liveRecordForBook(bookID int64) *models.BibliographicRecord {
	for _, r := range s.records {
		if !r.Deleted && r.BookID != nil && *r.BookID == bookID {
			return r
		}
	}
	return nil
}

// fakeProvider implements database.TxProvider with snapshot/restore
// transaction semantics so rollback genuinely undoes writes.
type fakeProvider struct {
	store     *memStore
	commits   int
	rollbacks int
}

func newFakeProvider(store *memStore) *fakeProvider {
	return &fakeProvider{store: store}
}

func (p *fakeProvider) Begin(ctx context.Context) (database.UnitOfWork, error) {
	return &fakeUow{p: p, snap: p.store.snapshot()}, nil
}

func (p *fakeProvider) Querier() database.Querier { return nil }

type fakeUow struct {
	p    *fakeProvider
	snap *memStore
	done bool
}

func (u *fakeUow) Querier() database.Querier { return nil }
func (u *fakeUow) Tx() *sql.Tx               { return nil }

func (u *fakeUow) Commit() error {
	if u.done {
		return sql.ErrTxDone
	}
	u.done = true
	u.p.commits++
	return nil
}

func (u *fakeUow) Rollback() {
	if u.done {
		return
	}
	u.done = true
	u.p.store.restore(u.snap)
	u.p.rollbacks++
}

func (u *fakeUow) Close() { u.Rollback() }

// fakeBookRepo implements repositories.BookRepository over memStore.
// The Querier argument is ignored; state lives in the store.
type fakeBookRepo struct {
	s         *memStore
	insertErr error
}

func (r *fakeBookRepo) Insert(ctx context.Context, q database.Querier, book *models.Book) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	r.s.nextBookID++
	book.ID = r.s.nextBookID
	r.s.books[book.ID] = cloneBook(book)
	return nil
}

func (r *fakeBookRepo) FindByID(ctx context.Context, q database.Querier, id int64) (*models.Book, error) {
	b, ok := r.s.books[id]
	if !ok || b.Deleted {
		return nil, domain.ErrBookNotFound
	}
	return r.hydrate(b), nil
}

func (r *fakeBookRepo) List(ctx context.Context, q database.Querier) ([]*models.Book, error) {
	var out []*models.Book
	for _, b := range r.s.books {
		if !b.Deleted {
			out = append(out, r.hydrate(b))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeBookRepo) Update(ctx context.Context, q database.Querier, book *models.Book) error {
	b, ok := r.s.books[book.ID]
	if !ok || b.Deleted {
		return domain.ErrBookNotFound
	}
	r.s.books[book.ID] = cloneBook(book)
	return nil
}

func (r *fakeBookRepo) SoftDelete(ctx context.Context, q database.Querier, id int64) error {
	b, ok := r.s.books[id]
	if !ok || b.Deleted {
		return domain.ErrBookNotFound
	}
	b.Deleted = true
	return nil
}

func (r *fakeBookRepo) hydrate(b *models.Book) *models.Book {
	out := cloneBook(b)
	if rec := r.s.liveRecordForBook(b.ID); rec != nil {
		out.Record = cloneRecord(rec)
	}
	return out
}

// fakeRecordRepo implements repositories.RecordRepository over memStore,
// enforcing the unique live book_id constraint like the partial index does.
type fakeRecordRepo struct {
	s         *memStore
	insertErr error
}

func (r *fakeRecordRepo) Insert(ctx context.Context, q database.Querier, record *models.BibliographicRecord) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	if record.BookID != nil && r.s.liveRecordForBook(*record.BookID) != nil {
		return domain.ErrRecordLinked
	}
	r.s.nextRecID++
	record.ID = r.s.nextRecID
	r.s.records[record.ID] = cloneRecord(record)
	return nil
}

func (r *fakeRecordRepo) FindByID(ctx context.Context, q database.Querier, id int64) (*models.BibliographicRecord, error) {
	rec, ok := r.s.records[id]
	if !ok || rec.Deleted {
		return nil, domain.ErrRecordNotFound
	}
	return cloneRecord(rec), nil
}

func (r *fakeRecordRepo) List(ctx context.Context, q database.Querier) ([]*models.BibliographicRecord, error) {
	var out []*models.BibliographicRecord
	for _, rec := range r.s.records {
		if !rec.Deleted {
			out = append(out, cloneRecord(rec))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeRecordRepo) Update(ctx context.Context, q database.Querier, record *models.BibliographicRecord) error {
	rec, ok := r.s.records[record.ID]
	if !ok || rec.Deleted {
		return domain.ErrRecordNotFound
	}
	// book_id is not part of the update statement.
	updated := cloneRecord(record)
	updated.BookID = rec.BookID
	r.s.records[record.ID] = updated
	return nil
}

func (r *fakeRecordRepo) SoftDelete(ctx context.Context, q database.Querier, id int64) error {
	rec, ok := r.s.records[id]
	if !ok || rec.Deleted {
		return domain.ErrRecordNotFound
	}
	rec.Deleted = true
	return nil
}

func (r *fakeRecordRepo) UpdateBookID(ctx context.Context, q database.Querier, recordID, bookID int64) error {
	rec, ok := r.s.records[recordID]
	if !ok || rec.Deleted {
		return domain.ErrRecordNotFound
	}
	if existing := r.s.liveRecordForBook(bookID); existing != nil && existing.ID != recordID {
		return domain.ErrRecordLinked
	}
	rec.BookID = &bookID
	return nil
}

// fixture bundles the fakes wired the way New wires the real services.
type fixture struct {
	store    *memStore
	provider *fakeProvider
	books    *fakeBookRepo
	records  *fakeRecordRepo
}

func newFixture() *fixture {
	store := newMemStore()
	return &fixture{
		store:    store,
		provider: newFakeProvider(store),
		books:    &fakeBookRepo{s: store},
		records:  &fakeRecordRepo{s: store},
	}
}

func (f *fixture) bookService() *BookService {
	return NewBookService(f.provider, f.books)
}

func (f *fixture) recordService() *RecordService {
	return NewRecordService(f.provider, f.records)
}

func (f *fixture) catalogService() *CatalogService {
	return NewCatalogService(f.provider, f.books, f.records, nil, nil)
}

func strptr(s string) *string { return &s }
func intptr(i int) *int       { return &i }
