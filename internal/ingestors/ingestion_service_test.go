package ingestors_test

import (
	"bytes"
	"context"
	"testing"

	"hotpath-analytics/internal/ingestors"
	"hotpath-analytics/internal/models"
	parsermocks "hotpath-analytics/internal/parsers/mocks"
	"hotpath-analytics/internal/shared/svcerrors"
	"hotpath-analytics/internal/stores"
	storemocks "hotpath-analytics/internal/stores/mocks"
	streammocks "hotpath-analytics/internal/streams/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestIngestChunk_ErrValidationFailed_MissingSourceID(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	parser := parsermocks.NewMockAccessLogParser(ctrl)
	chunkStore := storemocks.NewMockLineChunkStore(ctrl)
	producer := streammocks.NewMockAccessEventProducer(ctrl)
	service := ingestors.NewIngestionService(parser, chunkStore, producer)

	ctx := context.Background()
	body := bytes.NewReader([]byte("192.168.1.10 - - [10/May/2021:12:01:55 +0000] \"GET /home HTTP/1.1\" 200 512\n"))
	result, err := service.IngestChunk(ctx, "", "key1", "text/plain", body)

	require.Error(t, err, "expected error")
	svcErr, ok := svcerrors.As(err)
	require.True(t, ok, "expected ServiceError")
	assert.Equal(t, "ING_1000", svcErr.Code)
	assert.Equal(t, "invalid_argument", svcErr.Category)
	assert.Nil(t, result, "expected nil result on error")
}

func TestIngestChunk_ErrValidationFailed_NilBody(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	parser := parsermocks.NewMockAccessLogParser(ctrl)
	chunkStore := storemocks.NewMockLineChunkStore(ctrl)
	producer := streammocks.NewMockAccessEventProducer(ctrl)
	service := ingestors.NewIngestionService(parser, chunkStore, producer)

	ctx := context.Background()
	result, err := service.IngestChunk(ctx, "src-nginx-01", "key1", "text/plain", nil)

	require.Error(t, err, "expected error")
	svcErr, ok := svcerrors.As(err)
	require.True(t, ok, "expected ServiceError")
	assert.Equal(t, "ING_1000", svcErr.Code)
	assert.Equal(t, "empty request body", svcErr.Message)
	assert.Nil(t, result, "expected nil result on error")
}

func TestIngestChunk_ErrValidationFailed_UnsupportedContentType(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	parser := parsermocks.NewMockAccessLogParser(ctrl)
	chunkStore := storemocks.NewMockLineChunkStore(ctrl)
	producer := streammocks.NewMockAccessEventProducer(ctrl)
	service := ingestors.NewIngestionService(parser, chunkStore, producer)

	ctx := context.Background()
	body := bytes.NewReader([]byte(`[{"path":"/"}]`))
	result, err := service.IngestChunk(ctx, "src-nginx-01", "key1", "application/json", body)

	require.Error(t, err, "expected error")
	svcErr, ok := svcerrors.As(err)
	require.True(t, ok, "expected ServiceError")
	assert.Equal(t, "ING_1000", svcErr.Code)
	assert.Equal(t, "invalid_argument", svcErr.Category)
	assert.Nil(t, result, "expected nil result on error")
}

func TestIngestChunk_AcceptsContentTypeWithCharset(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	parser := parsermocks.NewMockAccessLogParser(ctrl)
	chunkStore := storemocks.NewMockLineChunkStore(ctrl)
	producer := streammocks.NewMockAccessEventProducer(ctrl)

	chunkStore.EXPECT().Put(gomock.Any(), gomock.Any()).Return(nil)
	parser.EXPECT().Parse(gomock.Any()).Return(&models.AccessRecord{RequestPath: "/home"}, nil)
	producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)

	service := ingestors.NewIngestionService(parser, chunkStore, producer)

	ctx := context.Background()
	body := bytes.NewReader([]byte("192.168.1.10 - - [10/May/2021:12:01:55 +0000] \"GET /home HTTP/1.1\" 200 512\n"))
	result, err := service.IngestChunk(ctx, "src-nginx-01", "key1", "Text/Plain; charset=utf-8", body)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Accepted)
}

func TestIngestChunk_ErrValidationFailed_ChunkTooLarge(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	parser := parsermocks.NewMockAccessLogParser(ctrl)
	chunkStore := storemocks.NewMockLineChunkStore(ctrl)
	producer := streammocks.NewMockAccessEventProducer(ctrl)
	service := ingestors.NewIngestionService(parser, chunkStore, producer)

	ctx := context.Background()
	// Create body with size 2*1024*1024 + 1 bytes
	largeBody := make([]byte, 2*1024*1024+1)
	body := bytes.NewReader(largeBody)

	_, err := service.IngestChunk(ctx, "src-nginx-01", "key1", "text/plain", body)

	require.Error(t, err, "expected error")
	svcErr, ok := svcerrors.As(err)
	require.True(t, ok, "expected ServiceError")
	assert.Equal(t, "ING_1000", svcErr.Code)
	assert.Equal(t, "invalid_argument", svcErr.Category)
	assert.Equal(t, "chunk too large: must be <= 2MB", svcErr.Message)
}

func TestIngestChunk_ErrValidationFailed_NoLines(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	parser := parsermocks.NewMockAccessLogParser(ctrl)
	chunkStore := storemocks.NewMockLineChunkStore(ctrl)
	producer := streammocks.NewMockAccessEventProducer(ctrl)
	service := ingestors.NewIngestionService(parser, chunkStore, producer)

	ctx := context.Background()
	body := bytes.NewReader([]byte("\n\n   \n"))
	result, err := service.IngestChunk(ctx, "src-nginx-01", "key1", "text/plain", body)

	require.Error(t, err, "expected error")
	svcErr, ok := svcerrors.As(err)
	require.True(t, ok, "expected ServiceError")
	assert.Equal(t, "ING_1000", svcErr.Code)
	assert.Equal(t, "log lines cannot be empty", svcErr.Message)
	assert.Nil(t, result, "expected nil result on error")
}

func TestIngestChunk_ErrChunkPutFailed(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name             string
		putError         error
		expectedCode     string
		expectedCategory string
	}{
		{
			name:             "line chunk already exists",
			putError:         stores.ErrLineChunkAlreadyExist,
			expectedCode:     "ING_1001",
			expectedCategory: "resource_conflict",
		},
		{
			name:             "line chunk put failed",
			putError:         assert.AnError,
			expectedCode:     "ING_9000",
			expectedCategory: "internal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser := parsermocks.NewMockAccessLogParser(ctrl)
			chunkStore := storemocks.NewMockLineChunkStore(ctrl)
			producer := streammocks.NewMockAccessEventProducer(ctrl)

			chunkStore.EXPECT().Put(gomock.Any(), gomock.Any()).Return(tt.putError)

			service := ingestors.NewIngestionService(parser, chunkStore, producer)

			ctx := context.Background()
			body := bytes.NewReader([]byte("192.168.1.10 - - [10/May/2021:12:01:55 +0000] \"GET /home HTTP/1.1\" 200 512\n"))

			result, err := service.IngestChunk(ctx, "src-nginx-01", "key1", "text/plain", body)

			require.Error(t, err, "expected error")
			svcErr, ok := svcerrors.As(err)
			require.True(t, ok, "expected ServiceError")
			assert.Equal(t, tt.expectedCode, svcErr.Code)
			assert.Equal(t, tt.expectedCategory, svcErr.Category)
			assert.Nil(t, result, "expected nil result on error")
		})
	}
}

func TestIngestChunk_ErrProducerFailed(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	parser := parsermocks.NewMockAccessLogParser(ctrl)
	chunkStore := storemocks.NewMockLineChunkStore(ctrl)
	producer := streammocks.NewMockAccessEventProducer(ctrl)

	chunkStore.EXPECT().Put(gomock.Any(), gomock.Any()).Return(nil)
	parser.EXPECT().Parse(gomock.Any()).Return(&models.AccessRecord{RequestPath: "/home"}, nil)
	producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(assert.AnError)

	service := ingestors.NewIngestionService(parser, chunkStore, producer)

	ctx := context.Background()
	body := bytes.NewReader([]byte("192.168.1.10 - - [10/May/2021:12:01:55 +0000] \"GET /home HTTP/1.1\" 200 512\n"))

	result, err := service.IngestChunk(ctx, "src-nginx-01", "key1", "text/plain", body)

	require.Error(t, err, "expected error")
	svcErr, ok := svcerrors.As(err)
	require.True(t, ok, "expected ServiceError")
	assert.Equal(t, "ING_9001", svcErr.Code)
	assert.Equal(t, "internal", svcErr.Category)
	assert.Nil(t, result, "expected nil result on error")
}

func TestIngestChunk_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	parser := parsermocks.NewMockAccessLogParser(ctrl)
	chunkStore := storemocks.NewMockLineChunkStore(ctrl)
	producer := streammocks.NewMockAccessEventProducer(ctrl)

	lineHome := `192.168.1.10 - - [10/May/2021:12:01:55 +0000] "GET /home HTTP/1.1" 200 512`
	lineOrders := `192.168.1.11 - - [10/May/2021:12:01:56 +0000] "GET /api/orders HTTP/1.1" 200 128`
	lineGarbage := `this is not an access log line`

	var storedChunk *models.LineChunk
	chunkStore.EXPECT().Put(gomock.Any(), gomock.Any()).
		Do(func(ctx context.Context, chunk *models.LineChunk) {
			storedChunk = chunk
		}).
		Return(nil)

	recordHome := &models.AccessRecord{RequestPath: "/home"}
	recordOrders := &models.AccessRecord{RequestPath: "/api/orders"}
	parser.EXPECT().Parse(lineHome).Return(recordHome, nil)
	parser.EXPECT().Parse(lineOrders).Return(recordOrders, nil)
	parser.EXPECT().Parse(lineGarbage).Return(nil, assert.AnError)

	producer.EXPECT().Produce(gomock.Any(), recordHome).Return(nil)
	producer.EXPECT().Produce(gomock.Any(), recordOrders).Return(nil)

	service := ingestors.NewIngestionService(parser, chunkStore, producer)

	ctx := context.Background()
	body := bytes.NewReader([]byte(lineHome + "\n" + lineOrders + "\n" + lineGarbage + "\n"))

	result, err := service.IngestChunk(ctx, "src-nginx-01", "key1", "text/plain", body)

	require.NoError(t, err)
	assert.Equal(t, "key1", result.ChunkID)
	assert.Equal(t, 2, result.Accepted)
	assert.Equal(t, 1, result.Rejected)

	require.NotNil(t, storedChunk)
	assert.Equal(t, "key1", storedChunk.ChunkID)
	assert.Equal(t, "src-nginx-01", storedChunk.SourceID)
	assert.Equal(t, []string{lineHome, lineOrders, lineGarbage}, storedChunk.Lines)
}

func TestIngestChunk_GeneratesChunkIDWhenKeyMissing(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	parser := parsermocks.NewMockAccessLogParser(ctrl)
	chunkStore := storemocks.NewMockLineChunkStore(ctrl)
	producer := streammocks.NewMockAccessEventProducer(ctrl)

	var storedChunk *models.LineChunk
	chunkStore.EXPECT().Put(gomock.Any(), gomock.Any()).
		Do(func(ctx context.Context, chunk *models.LineChunk) {
			storedChunk = chunk
		}).
		Return(nil)
	parser.EXPECT().Parse(gomock.Any()).Return(&models.AccessRecord{RequestPath: "/home"}, nil)
	producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)

	service := ingestors.NewIngestionService(parser, chunkStore, producer)

	ctx := context.Background()
	body := bytes.NewReader([]byte("192.168.1.10 - - [10/May/2021:12:01:55 +0000] \"GET /home HTTP/1.1\" 200 512\n"))

	result, err := service.IngestChunk(ctx, "src-nginx-01", "   ", "text/plain", body)

	require.NoError(t, err)
	assert.NotEmpty(t, result.ChunkID)
	assert.Len(t, result.ChunkID, 26, "generated chunk id should be a ULID")
	require.NotNil(t, storedChunk)
	assert.Equal(t, result.ChunkID, storedChunk.ChunkID)
}

func TestIngestLines_RejectsUnparseableLinesAndContinues(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	parser := parsermocks.NewMockAccessLogParser(ctrl)
	chunkStore := storemocks.NewMockLineChunkStore(ctrl)
	producer := streammocks.NewMockAccessEventProducer(ctrl)

	recordHome := &models.AccessRecord{RequestPath: "/home"}
	recordOrders := &models.AccessRecord{RequestPath: "/api/orders"}

	parser.EXPECT().Parse("good line 1").Return(recordHome, nil)
	parser.EXPECT().Parse("garbage").Return(nil, assert.AnError)
	parser.EXPECT().Parse("good line 2").Return(recordOrders, nil)

	gomock.InOrder(
		producer.EXPECT().Produce(gomock.Any(), recordHome).Return(nil),
		producer.EXPECT().Produce(gomock.Any(), recordOrders).Return(nil),
	)

	service := ingestors.NewIngestionService(parser, chunkStore, producer)

	result, err := service.IngestLines(context.Background(), []string{"good line 1", "garbage", "good line 2"})

	require.NoError(t, err)
	assert.Equal(t, 2, result.Accepted)
	assert.Equal(t, 1, result.Rejected)
	assert.Empty(t, result.ChunkID)
}

func TestIngestLines_SkipsBlankLines(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	parser := parsermocks.NewMockAccessLogParser(ctrl)
	chunkStore := storemocks.NewMockLineChunkStore(ctrl)
	producer := streammocks.NewMockAccessEventProducer(ctrl)

	// Neither the parser nor the producer may see blank lines.
	service := ingestors.NewIngestionService(parser, chunkStore, producer)

	result, err := service.IngestLines(context.Background(), []string{"", "   ", "\t"})

	require.NoError(t, err)
	assert.Equal(t, 0, result.Accepted)
	assert.Equal(t, 0, result.Rejected)
}
