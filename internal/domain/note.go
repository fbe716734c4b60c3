package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// DefaultNoteTitle is the title given to a freshly created note.
const DefaultNoteTitle = "Untitled"

// ErrUnknownTemplate is returned when a template kind is not recognised.
var ErrUnknownTemplate = errors.New("unknown note template")

// Note is a free-text note. Content may hold code, so unlike titles it is
// not screened for markup.
type Note struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewNote creates an untitled, empty note with a fresh ID.
func NewNote() *Note {
	now := time.Now().UTC()
	return &Note{
		ID:        uuid.New(),
		Title:     DefaultNoteTitle,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// TemplateKind names a starter template for note content.
type TemplateKind string

// Supported templates.
const (
	TemplateHTML TemplateKind = "html"
	TemplateJava TemplateKind = "java"
	TemplateCPP  TemplateKind = "cpp"
)

var templates = map[TemplateKind]string{
	TemplateHTML: `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Document</title>
</head>
<body>
  <!-- Your content here -->
</body>
</html>`,
	TemplateJava: `// Import statements go here (optional)
import java.util.*;

public class Main {
  public static void main(String[] args) {
    // Your code here
    System.out.println("Hello, Java!");
  }
}`,
	TemplateCPP: `#include <iostream>
using namespace std;

int main() {
  // Your code here
  cout << "Hello, C++!" << endl;
  return 0;
}`,
}

// Template returns the starter text for kind.
func Template(kind TemplateKind) (string, error) {
	text, ok := templates[kind]
	if !ok {
		return "", ErrUnknownTemplate
	}
	return text, nil
}
