package files

import (
	"archive/zip"
	"bufio"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/go-pdf/fpdf"
	_ "golang.org/x/image/webp" // needed to decode webp
)

func IsValidLocation(location string) error {
	if _, err := os.Stat(location); err != nil {
		return err
	}

	return nil
}

// CreateCbzArchive packs the downloaded chapter directories into a
// single manga.cbz next to them. Directories are renamed with an index
// prefix so readers page through them in download order, and removed
// once archived.
func CreateCbzArchive(chapterDirs []string) error {
	if len(chapterDirs) == 0 {
		return nil
	}

	parent := "."
	names := make([]string, 0, len(chapterDirs))
	for i, dir := range chapterDirs {
		parent = filepath.Dir(dir)

		name := fmt.Sprintf("%05d_%s", i, filepath.Base(dir))
		if err := os.Rename(dir, filepath.Join(parent, name)); err != nil {
			return err
		}
		names = append(names, name)
	}

	cbzFile, err := os.Create(filepath.Join(parent, "manga.cbz"))
	if err != nil {
		return err
	}
	defer cbzFile.Close()

	writeBuf := bufio.NewWriter(cbzFile)
	defer writeBuf.Flush()

	zipWriter := zip.NewWriter(writeBuf)
	defer zipWriter.Close()

	for _, name := range names {
		entries, err := os.ReadDir(filepath.Join(parent, name))
		if err != nil {
			return err
		}

		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}

			imgPath := filepath.Join(parent, name, entry.Name())
			if err := addFileToZip(zipWriter, imgPath, name+"/"+entry.Name()); err != nil {
				return err
			}
		}

		// the directory has been added to the archive, drop it
		_ = os.RemoveAll(filepath.Join(parent, name))
	}

	return nil
}

// CreatePDF renders the downloaded chapter directories into a single
// manga.pdf next to them, one page per image, and removes the source
// directories afterwards.
func CreatePDF(chapterDirs []string) error {
	if len(chapterDirs) == 0 {
		return nil
	}

	parent := filepath.Dir(chapterDirs[0])
	pdf := fpdf.New(fpdf.OrientationPortrait, fpdf.UnitMillimeter, "", "")

	for _, dir := range chapterDirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return err
		}

		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}

			imgPath := filepath.Join(dir, entry.Name())

			// page extensions follow the source filenames, which don't
			// always match the bytes; sniff the real format for fpdf
			format, err := sniffFormat(imgPath)
			if err != nil || format == "webp" {
				continue
			}

			pdfInfo := pdf.RegisterImageOptions(imgPath, fpdf.ImageOptions{ImageType: format})
			imgWidth, imgHeight := pdfInfo.Extent()

			pdf.AddPageFormat(fpdf.OrientationPortrait, fpdf.SizeType{Wd: imgWidth, Ht: imgHeight})

			pdf.ImageOptions(imgPath, 0, 0, imgWidth, imgHeight, false, fpdf.ImageOptions{ImageType: format}, 0, "")
		}
	}

	if err := pdf.OutputFileAndClose(filepath.Join(parent, "manga.pdf")); err != nil {
		return err
	}

	for _, dir := range chapterDirs {
		_ = os.RemoveAll(dir)
	}

	return nil
}

// sniffFormat probes the image format from the file contents.
func sniffFormat(imgPath string) (string, error) {
	imgFile, err := os.Open(imgPath)
	if err != nil {
		return "", err
	}
	defer imgFile.Close()

	_, format, err := image.DecodeConfig(imgFile)
	if err != nil {
		return "", err
	}

	return format, nil
}

// addFileToZip adds a single file to the zip archive
func addFileToZip(zipWriter *zip.Writer, filePath, fileName string) error {
	fileToZip, err := os.Open(filePath)
	if err != nil {
		return err
	}
	defer fileToZip.Close()

	writer, err := zipWriter.Create(fileName)
	if err != nil {
		return err
	}

	readerBuf := bufio.NewReader(fileToZip)

	_, err = io.Copy(writer, readerBuf)
	return err
}
