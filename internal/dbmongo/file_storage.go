package dbmongo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"

	"proapp/internal/common"
)

var ErrFileNotFound = errors.New("file not found")

// StoredFile describes one GridFS upload.
type StoredFile struct {
	ID         string               `json:"id"`
	Filename   string               `json:"filename"`
	Size       int64                `json:"size"`
	MimeType   string               `json:"mime_type"`
	FileType   common.MediaFileType `json:"file_type"`
	UploadedBy string               `json:"uploaded_by"`
	UploadedAt time.Time            `json:"uploaded_at"`
}

// fileMetadata is the metadata document kept next to each GridFS file.
type fileMetadata struct {
	OriginalName string    `bson:"original_name"`
	MimeType     string    `bson:"mime_type"`
	FileType     string    `bson:"file_type"`
	UploadedBy   string    `bson:"uploaded_by"`
	UploadedAt   time.Time `bson:"uploaded_at"`
}

type FileStorage struct {
	gridFS *gridfs.Bucket
	now    func() time.Time
}

func NewFileStorage(mongoClient *MongoClient) *FileStorage {
	return &FileStorage{gridFS: mongoClient.GridFS, now: time.Now}
}

// Upload stores content under a generated name grouped by file type, e.g.
// "images/<uuid>.png". The original name is kept in the metadata.
func (fs *FileStorage) Upload(ctx context.Context, filename, mimeType, uploaderID string, content io.Reader) (*StoredFile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	fileType := common.DetectFileType(mimeType)
	meta := fileMetadata{
		OriginalName: filename,
		MimeType:     mimeType,
		FileType:     fileType.String(),
		UploadedBy:   uploaderID,
		UploadedAt:   fs.now().UTC(),
	}

	stream, err := fs.gridFS.OpenUploadStream(storedName(fileType, filename), options.GridFSUpload().SetMetadata(meta))
	if err != nil {
		return nil, fmt.Errorf("upload failed: %w", err)
	}
	size, err := io.Copy(stream, content)
	if err != nil {
		_ = stream.Abort()
		return nil, fmt.Errorf("file copy failed: %w", err)
	}
	if err := stream.Close(); err != nil {
		return nil, fmt.Errorf("finalize upload: %w", err)
	}

	id, ok := stream.FileID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("unexpected file id %T", stream.FileID)
	}
	return &StoredFile{
		ID:         id.Hex(),
		Filename:   filename,
		Size:       size,
		MimeType:   mimeType,
		FileType:   fileType,
		UploadedBy: uploaderID,
		UploadedAt: meta.UploadedAt,
	}, nil
}

// Open returns a reader over the file content. The caller closes it.
func (fs *FileStorage) Open(ctx context.Context, fileID string) (io.ReadCloser, *StoredFile, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	objectID, err := parseFileID(fileID)
	if err != nil {
		return nil, nil, err
	}
	stream, err := fs.gridFS.OpenDownloadStream(objectID)
	if err != nil {
		if errors.Is(err, gridfs.ErrFileNotFound) {
			return nil, nil, ErrFileNotFound
		}
		return nil, nil, fmt.Errorf("download failed: %w", err)
	}

	info := stream.GetFile()
	return stream, describe(fileID, info.Name, info.Length, info.UploadDate, info.Metadata), nil
}

func (fs *FileStorage) Delete(ctx context.Context, fileID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	objectID, err := parseFileID(fileID)
	if err != nil {
		return err
	}
	if err := fs.gridFS.Delete(objectID); err != nil {
		if errors.Is(err, gridfs.ErrFileNotFound) {
			return ErrFileNotFound
		}
		return fmt.Errorf("delete file: %w", err)
	}
	return nil
}

// parseFileID treats a malformed id like a missing file.
func parseFileID(fileID string) (primitive.ObjectID, error) {
	objectID, err := primitive.ObjectIDFromHex(fileID)
	if err != nil {
		return primitive.NilObjectID, ErrFileNotFound
	}
	return objectID, nil
}

func storedName(fileType common.MediaFileType, filename string) string {
	return fileType.Dir() + "/" + uuid.NewString() + strings.ToLower(path.Ext(filename))
}

// describe builds a StoredFile from GridFS fields. Files written without
// metadata fall back to their stored name and a detected type.
func describe(id, name string, size int64, uploadedAt time.Time, raw bson.Raw) *StoredFile {
	var meta fileMetadata
	if len(raw) > 0 {
		_ = bson.Unmarshal(raw, &meta)
	}
	f := &StoredFile{
		ID:         id,
		Filename:   meta.OriginalName,
		Size:       size,
		MimeType:   meta.MimeType,
		FileType:   common.MediaFileType(meta.FileType),
		UploadedBy: meta.UploadedBy,
		UploadedAt: uploadedAt,
	}
	if f.Filename == "" {
		f.Filename = path.Base(name)
	}
	if f.MimeType == "" {
		f.MimeType = "application/octet-stream"
	}
	if !f.FileType.IsValid() {
		f.FileType = common.DetectFileType(f.MimeType)
	}
	return f
}
