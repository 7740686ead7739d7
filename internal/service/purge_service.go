package service

import (
	"context"
	"errors"

	"leads-admin-service/internal/logger"
	"leads-admin-service/internal/model"
)

// DefaultPurgeBatchSize ограничивает размер одной транзакции удаления.
const DefaultPurgeBatchSize = 1000

// PurgeService безвозвратно удаляет лиды за диапазон дат вместе с зависимыми записями.
type PurgeService struct {
	posts     PostRepository
	txManager TransactionManager
	calendar  Calendar
	batchSize int
	log       *logger.Logger
}

// NewPurgeService создаёт сервис чистки лидов.
func NewPurgeService(posts PostRepository, txManager TransactionManager, calendar Calendar, batchSize int, log *logger.Logger) *PurgeService {
	if batchSize <= 0 {
		batchSize = DefaultPurgeBatchSize
	}
	return &PurgeService{
		posts:     posts,
		txManager: txManager,
		calendar:  calendar,
		batchSize: batchSize,
		log:       log,
	}
}

// Purge удаляет посты, созданные в [from 00:00:00.000, to 23:59:59.999].
// Удаление идёт батчами, каждый батч — отдельная транзакция. Сбой батча прерывает чистку;
// уже закоммиченные батчи остаются удалёнными.
func (s *PurgeService) Purge(ctx context.Context, from, to string) (model.PurgeResult, error) {
	if from == "" || to == "" {
		return model.PurgeResult{}, ErrBadRequest("from and to are required")
	}

	window, err := s.calendar.DayRange(from, to)
	if err != nil {
		if errors.Is(err, errRangeInverted) {
			return model.PurgeResult{}, ErrBadRequest(err.Error())
		}
		return model.PurgeResult{}, ErrBadRequest("Invalid date format. Use YYYY-MM-DD or MM-DD-YYYY/YY.")
	}

	result := model.PurgeResult{From: window.Start, To: window.End}

	ids, err := s.posts.ListIDsCreatedBetween(ctx, window.Start, window.End)
	if err != nil {
		return model.PurgeResult{}, ErrInternal("failed to select leads", err)
	}
	if len(ids) == 0 {
		return result, nil
	}

	for start := 0; start < len(ids); start += s.batchSize {
		end := min(start+s.batchSize, len(ids))
		chunk := ids[start:end]

		var batch model.PurgeCounts
		err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
			var err error
			batch, err = s.posts.DeleteWithDependents(ctx, chunk)
			return err
		})
		if err != nil {
			s.log.Errorw("purge batch failed",
				"from", window.Start, "to", window.End,
				"batch_start", start, "deleted_so_far", result.PurgeCounts, "err", err)
			return model.PurgeResult{}, ErrInternal("Internal server error", err)
		}
		result.Add(batch)
	}

	s.log.Audit("leads purged",
		"from", window.Start, "to", window.End,
		"posts", result.Posts, "claims", result.Claims, "deletion_logs", result.DeletionLogs)
	return result, nil
}
