package helper

import (
	"context"
	"log"
	"mime/multipart"
	"os"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

func InitCloudinary() *cloudinary.Cloudinary {
	cld, err := cloudinary.NewFromParams(
		os.Getenv("CLOUDINARY_CLOUD_NAME"),
		os.Getenv("CLOUDINARY_API_KEY"),
		os.Getenv("CLOUDINARY_API_SECRET"),
	)
	if err != nil {
		log.Fatalf("Cloudinary init failed: %v", err)
	}
	return cld
}

// UploadProofImage đẩy ảnh chứng từ chuyển khoản lên Cloudinary, trả về URL.
func UploadProofImage(ctx context.Context, file *multipart.FileHeader, publicCode string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	cld := InitCloudinary()
	resp, err := cld.Upload.Upload(ctx, src, uploader.UploadParams{
		Folder:   "vteam/payment-proofs",
		PublicID: publicCode,
	})
	if err != nil {
		return "", err
	}
	return resp.SecureURL, nil
}
