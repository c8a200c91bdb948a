package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextPlain(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		data     []byte
		want     string
	}{
		{
			name:     "txt passthrough",
			fileName: "resume.txt",
			data:     []byte("Education\nExperience\nSkills: python"),
			want:     "Education\nExperience\nSkills: python",
		},
		{
			name:     "unknown suffix decoded as text",
			fileName: "resume.md",
			data:     []byte("## Skills\npython, sql"),
			want:     "## Skills\npython, sql",
		},
		{
			name:     "no suffix decoded as text",
			fileName: "resume",
			data:     []byte("plain resume body"),
			want:     "plain resume body",
		},
		{
			name:     "invalid utf-8 sequences dropped",
			fileName: "resume.txt",
			data:     []byte{'p', 'y', 0xff, 0xfe, 't', 'h', 'o', 'n'},
			want:     "python",
		},
		{
			name:     "empty file",
			fileName: "resume.txt",
			data:     nil,
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Text(tt.fileName, tt.data))
		})
	}
}

func TestTextCorruptDocumentsDegradeToEmpty(t *testing.T) {
	garbage := []byte("this is not a real document at all")

	tests := []struct {
		name     string
		fileName string
	}{
		{"corrupt pdf", "resume.pdf"},
		{"corrupt pdf uppercase suffix", "RESUME.PDF"},
		{"corrupt docx", "resume.docx"},
		{"corrupt docx mixed case suffix", "resume.DocX"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, "", Text(tt.fileName, garbage))
		})
	}
}

func TestTextDoesNotMutateInput(t *testing.T) {
	data := []byte("%PDF-1.4 truncated nonsense")
	original := append([]byte(nil), data...)

	Text("resume.pdf", data)
	assert.Equal(t, original, data)
}

func TestParagraphText(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name: "paragraphs newline joined",
			content: `<w:document><w:body>` +
				`<w:p><w:r><w:t>Alex Muster</w:t></w:r></w:p>` +
				`<w:p><w:r><w:t>Education: B.Tech</w:t></w:r></w:p>` +
				`</w:body></w:document>`,
			want: "Alex Muster\nEducation: B.Tech",
		},
		{
			name: "runs within a paragraph concatenate",
			content: `<w:p><w:r><w:t>python, </w:t></w:r>` +
				`<w:r><w:t>sql</w:t></w:r></w:p>`,
			want: "python, sql",
		},
		{
			name:    "text outside runs ignored",
			content: `<w:p><w:pPr>style</w:pPr><w:r><w:t>kept</w:t></w:r></w:p>`,
			want:    "kept",
		},
		{
			name:    "empty document",
			content: `<w:document><w:body></w:body></w:document>`,
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, paragraphText(tt.content))
		})
	}
}
