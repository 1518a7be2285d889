package services

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"lessonhub/internal/models/db_models"
	"lessonhub/internal/repositories"
)

// In-memory repository fakes. They emulate the store-side semantics the
// services rely on: guarded like updates, unique favorites, newest-first
// ordering.

type fakeAccountRepo struct {
	accounts map[string]*db_models.Account // keyed by email
	inserts  int
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: map[string]*db_models.Account{}}
}

func (f *fakeAccountRepo) add(account *db_models.Account) *db_models.Account {
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	f.accounts[account.Email] = account
	return account
}

func (f *fakeAccountRepo) Insert(ctx context.Context, account *db_models.Account) error {
	if _, exists := f.accounts[account.Email]; exists {
		return errors.New("duplicate email")
	}
	account.ID = uuid.New()
	account.CreatedAt = time.Now().Unix()
	f.accounts[account.Email] = account
	f.inserts++
	return nil
}

func (f *fakeAccountRepo) FindById(ctx context.Context, id string) (*db_models.Account, error) {
	for _, account := range f.accounts {
		if account.ID.String() == id {
			return account, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	return f.accounts[email], nil
}

func (f *fakeAccountRepo) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	account, _ := f.FindById(ctx, id)
	if account == nil {
		return nil
	}
	if v, ok := fields["name"]; ok {
		account.Name = v.(string)
	}
	if v, ok := fields["photo_url"]; ok {
		account.PhotoURL = v.(string)
	}
	if v, ok := fields["external_id"]; ok {
		account.ExternalID = v.(string)
	}
	if v, ok := fields["role"]; ok {
		account.Role = v.(string)
	}
	return nil
}

func (f *fakeAccountRepo) SetPremiumByEmail(ctx context.Context, email string) error {
	account := f.accounts[email]
	if account == nil {
		return nil
	}
	account.IsPremium = true
	return nil
}

func (f *fakeAccountRepo) AddFavoriteID(ctx context.Context, email, lessonID string) error {
	account := f.accounts[email]
	if account == nil {
		return nil
	}
	for _, id := range account.FavoriteLessonIDs {
		if id == lessonID {
			return nil
		}
	}
	account.FavoriteLessonIDs = append(account.FavoriteLessonIDs, lessonID)
	return nil
}

func (f *fakeAccountRepo) RemoveFavoriteID(ctx context.Context, email, lessonID string) error {
	account := f.accounts[email]
	if account == nil {
		return nil
	}
	kept := account.FavoriteLessonIDs[:0]
	for _, id := range account.FavoriteLessonIDs {
		if id != lessonID {
			kept = append(kept, id)
		}
	}
	account.FavoriteLessonIDs = kept
	return nil
}

func (f *fakeAccountRepo) List(ctx context.Context, page, pageSize int) ([]db_models.Account, error) {
	var accounts []db_models.Account
	for _, account := range f.accounts {
		accounts = append(accounts, *account)
	}
	return accounts, nil
}

func (f *fakeAccountRepo) Delete(ctx context.Context, id string) error {
	for email, account := range f.accounts {
		if account.ID.String() == id {
			delete(f.accounts, email)
		}
	}
	return nil
}

type fakeLessonRepo struct {
	lessons map[string]*db_models.Lesson
	seq     int64
}

func newFakeLessonRepo() *fakeLessonRepo {
	return &fakeLessonRepo{lessons: map[string]*db_models.Lesson{}}
}

func (f *fakeLessonRepo) Insert(ctx context.Context, lesson *db_models.Lesson) error {
	if lesson.ID == uuid.Nil {
		lesson.ID = uuid.New()
	}
	f.seq++
	lesson.CreatedAt = f.seq
	f.lessons[lesson.ID.String()] = lesson
	return nil
}

func (f *fakeLessonRepo) FindById(ctx context.Context, id string) (*db_models.Lesson, error) {
	return f.lessons[id], nil
}

func (f *fakeLessonRepo) FindByIds(ctx context.Context, ids []string) ([]db_models.Lesson, error) {
	var lessons []db_models.Lesson
	for _, id := range ids {
		if lesson, ok := f.lessons[id]; ok {
			lessons = append(lessons, *lesson)
		}
	}
	return lessons, nil
}

func (f *fakeLessonRepo) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	lesson := f.lessons[id]
	if lesson == nil {
		return nil
	}
	if v, ok := fields["title"]; ok {
		lesson.Title = v.(string)
	}
	if v, ok := fields["content"]; ok {
		lesson.Content = v.(string)
	}
	if v, ok := fields["category"]; ok {
		lesson.Category = v.(string)
	}
	if v, ok := fields["emotional_tag"]; ok {
		lesson.EmotionalTag = v.(string)
	}
	if v, ok := fields["visibility"]; ok {
		lesson.Visibility = v.(string)
	}
	if v, ok := fields["access_level"]; ok {
		lesson.AccessLevel = v.(string)
	}
	if v, ok := fields["featured"]; ok {
		lesson.Featured = v.(bool)
	}
	if v, ok := fields["reviewed"]; ok {
		lesson.Reviewed = v.(bool)
	}
	return nil
}

func (f *fakeLessonRepo) Delete(ctx context.Context, id string) error {
	delete(f.lessons, id)
	return nil
}

func (f *fakeLessonRepo) List(ctx context.Context, filter repositories.LessonFilter) ([]db_models.Lesson, int64, error) {
	var matched []db_models.Lesson
	for _, lesson := range f.lessons {
		if filter.Visibility != "" && lesson.Visibility != filter.Visibility {
			continue
		}
		if filter.Category != "" && lesson.Category != filter.Category {
			continue
		}
		if filter.EmotionalTag != "" && lesson.EmotionalTag != filter.EmotionalTag {
			continue
		}
		if filter.CreatorEmail != "" && lesson.CreatorEmail != filter.CreatorEmail {
			continue
		}
		if filter.FeaturedOnly && !lesson.Featured {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(lesson.Title), strings.ToLower(filter.Search)) {
			continue
		}
		matched = append(matched, *lesson)
	}

	switch filter.Sort {
	case "oldest":
		sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt < matched[j].CreatedAt })
	case "popular":
		sort.Slice(matched, func(i, j int) bool { return matched[i].LikeCount > matched[j].LikeCount })
	default:
		sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt > matched[j].CreatedAt })
	}

	total := int64(len(matched))
	start := (filter.Page - 1) * filter.PageSize
	if start > len(matched) {
		start = len(matched)
	}
	end := start + filter.PageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (f *fakeLessonRepo) CountByCreator(ctx context.Context, email string) (int64, error) {
	var count int64
	for _, lesson := range f.lessons {
		if lesson.CreatorEmail == email {
			count++
		}
	}
	return count, nil
}

func (f *fakeLessonRepo) AddLike(ctx context.Context, id, email string) (bool, error) {
	lesson := f.lessons[id]
	if lesson == nil {
		return false, nil
	}
	for _, liker := range lesson.LikedBy {
		if liker == email {
			return false, nil
		}
	}
	lesson.LikedBy = append(lesson.LikedBy, email)
	lesson.LikeCount++
	return true, nil
}

func (f *fakeLessonRepo) RemoveLike(ctx context.Context, id, email string) (bool, error) {
	lesson := f.lessons[id]
	if lesson == nil {
		return false, nil
	}
	kept := lesson.LikedBy[:0]
	removed := false
	for _, liker := range lesson.LikedBy {
		if liker == email {
			removed = true
			continue
		}
		kept = append(kept, liker)
	}
	lesson.LikedBy = kept
	if removed {
		lesson.LikeCount--
	}
	return removed, nil
}

type fakeFavoriteRepo struct {
	favorites []db_models.Favorite
	seq       int64
}

func (f *fakeFavoriteRepo) Find(ctx context.Context, email string, lessonID uuid.UUID) (*db_models.Favorite, error) {
	for i := range f.favorites {
		if f.favorites[i].AccountEmail == email && f.favorites[i].LessonID == lessonID {
			return &f.favorites[i], nil
		}
	}
	return nil, nil
}

func (f *fakeFavoriteRepo) Insert(ctx context.Context, favorite *db_models.Favorite) error {
	favorite.ID = uuid.New()
	f.seq++
	favorite.CreatedAt = f.seq
	f.favorites = append(f.favorites, *favorite)
	return nil
}

func (f *fakeFavoriteRepo) Delete(ctx context.Context, email string, lessonID uuid.UUID) error {
	kept := f.favorites[:0]
	for _, favorite := range f.favorites {
		if favorite.AccountEmail == email && favorite.LessonID == lessonID {
			continue
		}
		kept = append(kept, favorite)
	}
	f.favorites = kept
	return nil
}

func (f *fakeFavoriteRepo) ListByAccount(ctx context.Context, email string) ([]db_models.Favorite, error) {
	var matched []db_models.Favorite
	for _, favorite := range f.favorites {
		if favorite.AccountEmail == email {
			matched = append(matched, favorite)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt > matched[j].CreatedAt })
	return matched, nil
}

type fakeReportRepo struct {
	reports []db_models.Report
}

func (f *fakeReportRepo) Insert(ctx context.Context, report *db_models.Report) error {
	report.ID = uuid.New()
	report.CreatedAt = time.Now().Unix()
	f.reports = append(f.reports, *report)
	return nil
}

func (f *fakeReportRepo) FindById(ctx context.Context, id string) (*db_models.Report, error) {
	for i := range f.reports {
		if f.reports[i].ID.String() == id {
			return &f.reports[i], nil
		}
	}
	return nil, nil
}

func (f *fakeReportRepo) Delete(ctx context.Context, id string) error {
	kept := f.reports[:0]
	for _, report := range f.reports {
		if report.ID.String() == id {
			continue
		}
		kept = append(kept, report)
	}
	f.reports = kept
	return nil
}

func (f *fakeReportRepo) List(ctx context.Context, lessonID string) ([]db_models.Report, error) {
	var matched []db_models.Report
	for _, report := range f.reports {
		if lessonID != "" && report.LessonID.String() != lessonID {
			continue
		}
		matched = append(matched, report)
	}
	return matched, nil
}

func (f *fakeReportRepo) CountByLesson(ctx context.Context) ([]repositories.ReportCountRow, error) {
	counts := map[uuid.UUID]int64{}
	for _, report := range f.reports {
		counts[report.LessonID]++
	}
	var rows []repositories.ReportCountRow
	for lessonID, count := range counts {
		rows = append(rows, repositories.ReportCountRow{LessonID: lessonID, ReportCount: count})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].ReportCount > rows[j].ReportCount })
	return rows, nil
}

type fakeCommentRepo struct {
	comments []db_models.Comment
}

func (f *fakeCommentRepo) Insert(ctx context.Context, comment *db_models.Comment) error {
	comment.ID = uuid.New()
	comment.CreatedAt = time.Now().Unix()
	f.comments = append(f.comments, *comment)
	return nil
}

func (f *fakeCommentRepo) ListByLesson(ctx context.Context, lessonID uuid.UUID, page, pageSize int) ([]db_models.Comment, error) {
	var matched []db_models.Comment
	for _, comment := range f.comments {
		if comment.LessonID == lessonID {
			matched = append(matched, comment)
		}
	}
	return matched, nil
}

type fakeTransactionRepo struct {
	txns []db_models.Transaction
}

func (f *fakeTransactionRepo) Insert(ctx context.Context, txn *db_models.Transaction) error {
	if txn.ID == uuid.Nil {
		txn.ID = uuid.New()
	}
	txn.CreatedAt = time.Now().Unix()
	f.txns = append(f.txns, *txn)
	return nil
}

func (f *fakeTransactionRepo) FindByProviderTxnID(ctx context.Context, providerTxnID string) (*db_models.Transaction, error) {
	for i := range f.txns {
		if f.txns[i].ProviderTxnID == providerTxnID {
			return &f.txns[i], nil
		}
	}
	return nil, nil
}

func (f *fakeTransactionRepo) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	for i := range f.txns {
		if f.txns[i].ID.String() == id {
			if v, ok := fields["status"]; ok {
				f.txns[i].Status = v.(db_models.TransactionStatus)
			}
			if v, ok := fields["paid_at"]; ok {
				paidAt := v.(int64)
				f.txns[i].PaidAt = &paidAt
			}
		}
	}
	return nil
}
