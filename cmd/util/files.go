package util

import (
	"io"
	"os"
	"strconv"

	"github.com/konhoe/BioM-AI/pdb"
)

func OpenFile(path string) *os.File {
	f, err := os.Open(path)
	Assert(err, "Could not open file '%s'", path)
	return f
}

func CreateFile(path string) *os.File {
	f, err := os.Create(path)
	Assert(err, "Could not create file '%s'", path)
	return f
}

func CopyFile(src, dest string) {
	in := OpenFile(src)
	defer in.Close()
	out := CreateFile(dest)
	defer out.Close()

	_, err := io.Copy(out, in)
	Assert(err, "Could not copy '%s' to '%s'", src, dest)
}

func PDBRead(path string) *pdb.Entry {
	entry, err := pdb.Read(path)
	Assert(err, "Could not read PDB file '%s'", path)
	return entry
}

func ParseInt(str string) int {
	num, err := strconv.ParseInt(str, 10, 32)
	Assert(err, "Could not parse '%s' as an integer", str)
	return int(num)
}
