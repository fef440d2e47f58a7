// Package mocks provides mock expectation helpers for the snapshot repository
package mocks

import (
	"context"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/level-manager/internal/entities"
	characterrepo "github.com/KirkDiggler/level-manager/internal/repositories/character"
	charactermock "github.com/KirkDiggler/level-manager/internal/repositories/character/mock"
)

// ExpectSnapshotLoad sets up a mock expectation for loading name at level
func ExpectSnapshotLoad(
	ctx context.Context, mockRepo *charactermock.MockRepository,
	name string, level int, data *entities.CharacterData, err error,
) {
	var out *characterrepo.LoadOutput
	if err == nil {
		out = &characterrepo.LoadOutput{CharacterData: data}
	}
	mockRepo.EXPECT().
		Load(ctx, characterrepo.LoadInput{Name: name, Level: level}).
		Return(out, err)
}

// ExpectSnapshotSave sets up a mock expectation for any save, capturing the
// saved data into saved when it is not nil
func ExpectSnapshotSave(
	ctx context.Context, mockRepo *charactermock.MockRepository,
	savedAt time.Time, saved **entities.CharacterData,
) {
	mockRepo.EXPECT().
		Save(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input characterrepo.SaveInput) (*characterrepo.SaveOutput, error) {
			if saved != nil {
				*saved = input.CharacterData
			}
			return &characterrepo.SaveOutput{
				Key:     input.CharacterData.SnapshotKey(),
				SavedAt: savedAt,
			}, nil
		})
}

// ExpectListLevels sets up a mock expectation for listing the levels of name
func ExpectListLevels(
	ctx context.Context, mockRepo *charactermock.MockRepository,
	name string, levels []int, err error,
) {
	var out *characterrepo.ListLevelsOutput
	if err == nil {
		out = &characterrepo.ListLevelsOutput{Levels: levels}
	}
	mockRepo.EXPECT().
		ListLevels(ctx, characterrepo.ListLevelsInput{Name: name}).
		Return(out, err)
}
