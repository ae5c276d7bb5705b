package stores

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"hotpath-analytics/internal/models"
	"hotpath-analytics/internal/shared/filestorages"
	"hotpath-analytics/internal/shared/filestorages/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func sampleLineChunk() *models.LineChunk {
	return &models.LineChunk{
		ChunkID:  "01F57ZSKVV5N8X2Y0Q4N9GJREJ",
		SourceID: "src-nginx-01",
		Lines: []string{
			`192.168.1.10 - - [10/May/2021:12:01:55 +0000] "GET /home HTTP/1.1" 200 512`,
			`192.168.1.11 - - [10/May/2021:12:01:56 +0000] "GET /api/orders HTTP/1.1" 200 128`,
		},
	}
}

func TestNewLineChunkStore(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewLineChunkStore(mockFileStorage)

	assert.NotNil(t, store)
}

func TestLineChunkStore_Put_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewLineChunkStore(mockFileStorage)

	ctx := context.Background()
	chunk := sampleLineChunk()

	expectedKey := "raw-chunks/src-nginx-01/01F57ZSKVV5N8X2Y0Q4N9GJREJ.json"
	expectedJSON, _ := json.Marshal(chunk)

	mockFileStorage.EXPECT().
		Put(ctx, expectedKey, gomock.Any(), filestorages.PutOptions{AllowOverwrite: false}).
		DoAndReturn(func(ctx context.Context, key string, r io.Reader, opts filestorages.PutOptions) (*filestorages.PutResult, error) {
			data, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, expectedJSON, data)
			return &filestorages.PutResult{FileKey: key}, nil
		})

	err := store.Put(ctx, chunk)
	assert.NoError(t, err)
}

func TestLineChunkStore_Put_AlreadyExists(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewLineChunkStore(mockFileStorage)

	ctx := context.Background()
	chunk := sampleLineChunk()

	mockFileStorage.EXPECT().
		Put(ctx, "raw-chunks/src-nginx-01/01F57ZSKVV5N8X2Y0Q4N9GJREJ.json", gomock.Any(), filestorages.PutOptions{AllowOverwrite: false}).
		Return(nil, filestorages.ErrFileAlreadyExists)

	err := store.Put(ctx, chunk)
	assert.ErrorIs(t, err, ErrLineChunkAlreadyExist)
}

func TestLineChunkStore_Put_PutError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewLineChunkStore(mockFileStorage)

	ctx := context.Background()
	chunk := sampleLineChunk()
	putError := errors.New("storage error")

	mockFileStorage.EXPECT().
		Put(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, putError)

	err := store.Put(ctx, chunk)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to put line chunk")
	assert.Contains(t, err.Error(), "storage error")
}
