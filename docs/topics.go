// Package docs embeds the help topics of the inv tool.
//
// The readme lists the topics, one "* name: summary" line each, and every
// listed topic is a markdown file of the same name. Backup examples are
// fenced blocks with the "snapshot" info string.
package docs

import (
	"embed"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

//go:embed *.md
var files embed.FS

// SnapshotBlock is the info string of fenced blocks holding a backup file.
const SnapshotBlock = "snapshot"

// Topic is a help topic listed in the readme.
type Topic struct {
	Name    string
	Summary string
}

var topicLine = regexp.MustCompile(`^\*\s+([^:]+):\s*(.*)$`)

// Topics returns the topics listed in the readme, in readme order.
func Topics() ([]Topic, error) {
	readme, err := files.ReadFile("readme.md")
	if err != nil {
		return nil, fmt.Errorf("cannot read the topic list: %w", err)
	}
	var topics []Topic
	for _, line := range strings.Split(string(readme), "\n") {
		if m := topicLine.FindStringSubmatch(strings.TrimSpace(line)); m != nil {
			topics = append(topics, Topic{Name: strings.TrimSpace(m[1]), Summary: m[2]})
		}
	}
	return topics, nil
}

// GetAllTopics returns the sorted names of the listed topics.
func GetAllTopics() ([]string, error) {
	topics, err := Topics()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(topics))
	for _, t := range topics {
		names = append(names, t.Name)
	}
	slices.Sort(names)
	return names, nil
}

// GetTopic returns the markdown of a topic. "*" stands for every topic.
func GetTopic(name string) (string, error) {
	if name == "*" {
		names, err := GetAllTopics()
		if err != nil {
			return "", err
		}
		return GetTopics(names...)
	}
	content, err := files.ReadFile(name + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found: %w", name, err)
	}
	return string(content), nil
}

// GetTopics returns the markdown of several topics, each followed by a blank line.
func GetTopics(names ...string) (string, error) {
	var b strings.Builder
	for _, name := range names {
		content, err := GetTopic(name)
		if err != nil {
			return "", err
		}
		b.WriteString(content)
		if name != "*" {
			b.WriteString("\n")
		}
	}
	return b.String(), nil
}

// Example is a backup file shown in a topic.
type Example struct {
	Topic   string
	Line    int // line of the opening fence
	Content string
}

// Examples returns the snapshot blocks of a topic, in document order.
func Examples(name string) ([]Example, error) {
	content, err := files.ReadFile(name + ".md")
	if err != nil {
		return nil, fmt.Errorf("topic %q not found: %w", name, err)
	}
	root := goldmark.DefaultParser().Parse(text.NewReader(content))

	var examples []Example
	err = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		fcb, ok := n.(*ast.FencedCodeBlock)
		if !entering || !ok || fcb.Info == nil {
			return ast.WalkContinue, nil
		}
		if string(fcb.Info.Segment.Value(content)) != SnapshotBlock {
			return ast.WalkContinue, nil
		}
		var b strings.Builder
		for i := 0; i < fcb.Lines().Len(); i++ {
			seg := fcb.Lines().At(i)
			b.Write(seg.Value(content))
		}
		examples = append(examples, Example{
			Topic:   name,
			Line:    strings.Count(string(content[:fcb.Info.Segment.Start]), "\n") + 1,
			Content: b.String(),
		})
		return ast.WalkContinue, nil
	})
	return examples, err
}
