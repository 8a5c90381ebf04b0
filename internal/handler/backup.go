package handler

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/labstack/echo/v4"
	"github.com/robfig/cron/v3"
	"github.com/studio-b12/gowebdav"
	"go.uber.org/zap"

	"notted/ent"
	"notted/internal/persist"
)

const backupPrefix = "notted_backup_"

// DatabaseFile is the entitlement database filename inside the data dir.
const DatabaseFile = "notted.db"

// createBackupArchive builds a tar.gz holding the state record and the
// entitlement database.
func (h *Handler) createBackupArchive() (*bytes.Buffer, error) {
	buf := new(bytes.Buffer)
	gzWriter := gzip.NewWriter(buf)
	tarWriter := tar.NewWriter(gzWriter)

	fs := h.persist.Fs()

	addFile := func(path, name string) error {
		info, err := fs.Stat(path)
		if err != nil {
			return fmt.Errorf("failed to stat %s: %w", path, err)
		}

		header, err := tar.FileInfoHeader(info, "")
		if err != nil {
			return fmt.Errorf("failed to create tar header: %w", err)
		}
		header.Name = name

		if err := tarWriter.WriteHeader(header); err != nil {
			return fmt.Errorf("failed to write tar header: %w", err)
		}

		file, err := fs.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", path, err)
		}
		defer file.Close()

		if _, err := io.Copy(tarWriter, file); err != nil {
			return fmt.Errorf("failed to copy file data: %w", err)
		}
		return nil
	}

	// The state record must exist; the entitlement DB is optional (the
	// server may run against a fresh database).
	if err := addFile(h.persist.Path(), persist.StateFile); err != nil {
		return nil, err
	}

	dbPath := filepath.Join(h.persist.DataDir(), DatabaseFile)
	if _, err := fs.Stat(dbPath); err == nil {
		if err := addFile(dbPath, DatabaseFile); err != nil {
			return nil, err
		}
	}

	if err := tarWriter.Close(); err != nil {
		return nil, err
	}
	if err := gzWriter.Close(); err != nil {
		return nil, err
	}
	return buf, nil
}

// extractBackupArchive unpacks a tar.gz into the data directory.
func (h *Handler) extractBackupArchive(data []byte) error {
	gzReader, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to create gzip reader: %w", err)
	}
	defer gzReader.Close()

	tarReader := tar.NewReader(gzReader)
	fs := h.persist.Fs()
	dataDir := h.persist.DataDir()

	for {
		header, err := tarReader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read tar header: %w", err)
		}

		target := filepath.Join(dataDir, filepath.Clean(header.Name))
		if !strings.HasPrefix(target, filepath.Clean(dataDir)) {
			return fmt.Errorf("archive entry escapes data dir: %s", header.Name)
		}

		switch header.Typeflag {
		case tar.TypeDir:
			if err := fs.MkdirAll(target, 0755); err != nil {
				return fmt.Errorf("failed to create directory: %w", err)
			}
		case tar.TypeReg:
			file, err := fs.Create(target)
			if err != nil {
				return fmt.Errorf("failed to create file: %w", err)
			}
			if _, err := io.Copy(file, tarReader); err != nil {
				file.Close()
				return fmt.Errorf("failed to write file: %w", err)
			}
			file.Close()
		}
	}
	return nil
}

// GetBackupConfig retrieves or creates the backup configuration.
func (h *Handler) GetBackupConfig(c echo.Context) error {
	ctx := context.Background()

	configs, err := h.client.BackupConfig.Query().All(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	if len(configs) == 0 {
		config, err := h.client.BackupConfig.Create().Save(ctx)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, config)
	}
	return c.JSON(http.StatusOK, configs[0])
}

// UpdateBackupConfig updates the backup configuration.
func (h *Handler) UpdateBackupConfig(c echo.Context) error {
	var req struct {
		WebDAVURL         *string `json:"webdav_url"`
		WebDAVUser        *string `json:"webdav_user"`
		WebDAVPassword    *string `json:"webdav_password"`
		S3Endpoint        *string `json:"s3_endpoint"`
		S3Region          *string `json:"s3_region"`
		S3Bucket          *string `json:"s3_bucket"`
		S3AccessKey       *string `json:"s3_access_key"`
		S3SecretKey       *string `json:"s3_secret_key"`
		AutoBackupEnabled *bool   `json:"auto_backup_enabled"`
		BackupSchedule    *string `json:"backup_schedule"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}

	ctx := context.Background()
	configs, err := h.client.BackupConfig.Query().All(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	var configID int
	if len(configs) == 0 {
		config, err := h.client.BackupConfig.Create().Save(ctx)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		configID = config.ID
	} else {
		configID = configs[0].ID
	}

	update := h.client.BackupConfig.UpdateOneID(configID)
	if req.WebDAVURL != nil {
		update.SetWebdavURL(*req.WebDAVURL)
	}
	if req.WebDAVUser != nil {
		update.SetWebdavUser(*req.WebDAVUser)
	}
	if req.WebDAVPassword != nil {
		update.SetWebdavPassword(*req.WebDAVPassword)
	}
	if req.S3Endpoint != nil {
		update.SetS3Endpoint(*req.S3Endpoint)
	}
	if req.S3Region != nil {
		update.SetS3Region(*req.S3Region)
	}
	if req.S3Bucket != nil {
		update.SetS3Bucket(*req.S3Bucket)
	}
	if req.S3AccessKey != nil {
		update.SetS3AccessKey(*req.S3AccessKey)
	}
	if req.S3SecretKey != nil {
		update.SetS3SecretKey(*req.S3SecretKey)
	}
	if req.AutoBackupEnabled != nil {
		update.SetAutoBackupEnabled(*req.AutoBackupEnabled)
	}
	if req.BackupSchedule != nil {
		update.SetBackupSchedule(*req.BackupSchedule)
	}

	config, err := update.Save(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, config)
}

func (h *Handler) s3Client(ctx context.Context, config *ent.BackupConfig) (*s3.Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(config.S3Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(config.S3AccessKey, config.S3SecretKey, ""),
		),
	)
	if err != nil {
		return nil, err
	}
	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(config.S3Endpoint)
		o.UsePathStyle = true
	}), nil
}

func backupFilename() string {
	return fmt.Sprintf("%s%s.tar.gz", backupPrefix, time.Now().Format("20060102_150405"))
}

// BackupWebDAV archives the data to WebDAV.
func (h *Handler) BackupWebDAV(c echo.Context) error {
	ctx := context.Background()

	config, err := h.client.BackupConfig.Query().First(ctx)
	if ent.IsNotFound(err) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "backup not configured"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if config.WebdavURL == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "WebDAV URL not configured"})
	}

	archive, err := h.createBackupArchive()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": fmt.Sprintf("failed to create backup: %v", err)})
	}

	client := gowebdav.NewClient(config.WebdavURL, config.WebdavUser, config.WebdavPassword)
	filename := backupFilename()

	if err := client.Write(filename, archive.Bytes(), 0644); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": fmt.Sprintf("webdav upload failed: %v", err)})
	}

	h.client.BackupConfig.UpdateOneID(config.ID).
		SetLastBackupAt(time.Now()).
		SaveX(ctx)

	return c.JSON(http.StatusOK, map[string]string{"message": "backup successful", "file": filename})
}

// BackupS3 archives the data to S3.
func (h *Handler) BackupS3(c echo.Context) error {
	ctx := context.Background()

	config, err := h.client.BackupConfig.Query().First(ctx)
	if ent.IsNotFound(err) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "backup not configured"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if config.S3Endpoint == "" || config.S3Bucket == "" || config.S3AccessKey == "" || config.S3SecretKey == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "S3 configuration incomplete"})
	}

	archive, err := h.createBackupArchive()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": fmt.Sprintf("failed to create backup: %v", err)})
	}

	svc, err := h.s3Client(ctx, config)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to create s3 client"})
	}

	filename := backupFilename()
	_, err = svc.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(config.S3Bucket),
		Key:    aws.String(filename),
		Body:   bytes.NewReader(archive.Bytes()),
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": fmt.Sprintf("s3 upload failed: %v", err)})
	}

	h.client.BackupConfig.UpdateOneID(config.ID).
		SetLastBackupAt(time.Now()).
		SaveX(ctx)

	return c.JSON(http.StatusOK, map[string]string{"message": "backup successful", "file": filename})
}

// savePreRestoreBackup keeps a local copy of the current data before a
// restore overwrites it.
func (h *Handler) savePreRestoreBackup() {
	archive, err := h.createBackupArchive()
	if err != nil {
		return
	}
	filename := fmt.Sprintf("notted_pre_restore_backup_%s.tar.gz", time.Now().Format("20060102_150405"))
	path := filepath.Join(h.persist.DataDir(), filename)
	if f, err := h.persist.Fs().Create(path); err == nil {
		f.Write(archive.Bytes())
		f.Close()
	}
}

// RestoreWebDAV restores the data directory from a WebDAV backup.
func (h *Handler) RestoreWebDAV(c echo.Context) error {
	var req struct {
		Filename string `json:"filename"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}

	ctx := context.Background()
	config, err := h.client.BackupConfig.Query().First(ctx)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "backup not configured"})
	}

	client := gowebdav.NewClient(config.WebdavURL, config.WebdavUser, config.WebdavPassword)
	data, err := client.Read(req.Filename)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": fmt.Sprintf("failed to download: %v", err)})
	}

	h.savePreRestoreBackup()

	if err := h.extractBackupArchive(data); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": fmt.Sprintf("failed to extract backup: %v", err)})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "restore successful, restart to load the restored state"})
}

// RestoreS3 restores the data directory from an S3 backup.
func (h *Handler) RestoreS3(c echo.Context) error {
	var req struct {
		Filename string `json:"filename"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}

	ctx := context.Background()
	config, err := h.client.BackupConfig.Query().First(ctx)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "backup not configured"})
	}

	svc, err := h.s3Client(ctx, config)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to create s3 client"})
	}

	result, err := svc.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(config.S3Bucket),
		Key:    aws.String(req.Filename),
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": fmt.Sprintf("failed to download: %v", err)})
	}
	defer result.Body.Close()

	data, err := io.ReadAll(result.Body)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to read data"})
	}

	h.savePreRestoreBackup()

	if err := h.extractBackupArchive(data); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": fmt.Sprintf("failed to extract backup: %v", err)})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "restore successful, restart to load the restored state"})
}

// ListWebDAVBackups lists backup archives stored on WebDAV.
func (h *Handler) ListWebDAVBackups(c echo.Context) error {
	ctx := context.Background()
	config, err := h.client.BackupConfig.Query().First(ctx)
	if err != nil || config.WebdavURL == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "backup not configured"})
	}

	client := gowebdav.NewClient(config.WebdavURL, config.WebdavUser, config.WebdavPassword)
	entries, err := client.ReadDir("/")
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": fmt.Sprintf("webdav list failed: %v", err)})
	}

	files := []string{}
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasPrefix(entry.Name(), backupPrefix) {
			files = append(files, entry.Name())
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(files)))

	return c.JSON(http.StatusOK, map[string]any{"files": files})
}

// ListS3Backups lists backup archives stored on S3.
func (h *Handler) ListS3Backups(c echo.Context) error {
	ctx := context.Background()
	config, err := h.client.BackupConfig.Query().First(ctx)
	if err != nil || config.S3Bucket == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "backup not configured"})
	}

	svc, err := h.s3Client(ctx, config)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to create s3 client"})
	}

	out, err := svc.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket: aws.String(config.S3Bucket),
		Prefix: aws.String(backupPrefix),
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": fmt.Sprintf("s3 list failed: %v", err)})
	}

	files := []string{}
	for _, obj := range out.Contents {
		files = append(files, aws.ToString(obj.Key))
	}
	sort.Sort(sort.Reverse(sort.StringSlice(files)))

	return c.JSON(http.StatusOK, map[string]any{"files": files})
}

// StartAutoBackup schedules recurring WebDAV backups according to the
// stored configuration. Manual or missing configuration schedules
// nothing.
func (h *Handler) StartAutoBackup() *cron.Cron {
	ctx := context.Background()
	config, err := h.client.BackupConfig.Query().First(ctx)
	if err != nil || !config.AutoBackupEnabled {
		return nil
	}

	var spec string
	switch config.BackupSchedule {
	case "daily":
		spec = "0 3 * * *"
	case "weekly":
		spec = "0 3 * * 0"
	default:
		return nil
	}

	c := cron.New()
	_, err = c.AddFunc(spec, func() {
		if err := h.runScheduledBackup(); err != nil {
			zap.L().Error("Scheduled backup failed", zap.Error(err))
		} else {
			zap.L().Info("Scheduled backup completed")
		}
	})
	if err != nil {
		zap.L().Error("Failed to schedule auto backup", zap.Error(err))
		return nil
	}

	c.Start()
	zap.L().Info("Auto backup scheduled", zap.String("schedule", config.BackupSchedule))
	return c
}

// runScheduledBackup uploads an archive to whichever target is
// configured, preferring WebDAV.
func (h *Handler) runScheduledBackup() error {
	ctx := context.Background()
	config, err := h.client.BackupConfig.Query().First(ctx)
	if err != nil {
		return err
	}

	archive, err := h.createBackupArchive()
	if err != nil {
		return err
	}
	filename := backupFilename()

	switch {
	case config.WebdavURL != "":
		client := gowebdav.NewClient(config.WebdavURL, config.WebdavUser, config.WebdavPassword)
		if err := client.Write(filename, archive.Bytes(), 0644); err != nil {
			return err
		}
	case config.S3Bucket != "":
		svc, err := h.s3Client(ctx, config)
		if err != nil {
			return err
		}
		_, err = svc.PutObject(ctx, &s3.PutObjectInput{
			Bucket: aws.String(config.S3Bucket),
			Key:    aws.String(filename),
			Body:   bytes.NewReader(archive.Bytes()),
		})
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("no backup target configured")
	}

	_, err = h.client.BackupConfig.UpdateOneID(config.ID).
		SetLastBackupAt(time.Now()).
		Save(ctx)
	return err
}
