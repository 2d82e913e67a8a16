package services

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"homepage/internal/content"
	"homepage/internal/repositories"
)

const testPrompts = `{"prompts":[
  {"id":"p-rust","title":"Rust Mentor","content":"Teach me Rust ownership.","description":"Systems programming tutor","category":"education","platforms":["chatgpt","claude"],"keywords":["rust","borrow checker"]},
  {"id":"p-lyrics","title":"Lyric Writer","content":"Write lyrics about the sea.","category":"music","platforms":["gemini"]},
  {"id":"p-agent","title":"agent planner","content":"Plan the task step by step.","description":"Breaks goals into steps","category":"agent","platforms":["chatgpt","gemini","claude"],"keywords":["planning"]}
]}`

const testBookmarks = `{"tiles":[
  {"id":"t-gh","title":"GitHub","url":"https://github.com","size":"large","color":"#24292e","icon":"🐙"},
  {"id":"t-gap","title":"","url":"#","size":"small","color":"#000000"},
  {"id":"t-bad","title":"Mail","url":"https://mail.example.com","size":"medium","color":"#ff0000","icon":"<b>x</b>"}
]}`

const testPortfolio = `{"projects":[
  {"id":"homepage","title":"Homepage","description":"This site","image":"/img/home.png","tags":["go"],"githubUrl":"https://github.com/example/homepage","featured":true},
  {"id":"synth","title":"Synth","description":"A toy synthesizer","image":"/img/synth.png","tags":["audio","wasm"]}
]}`

const testPostOld = `---
title: First Post
author: Sam
date: 2023-05-01
---
import Chart from '../components/Chart'

## Intro

Hello *world*.

### Details

Some ` + "`code`" + `.

## Wrap up

Bye.
`

const testPostNew = `---
title: Second Post
description: Newer
author: Sam
date: 2024-02-10
---
# Title

Body.
`

const testPostSameDay = `---
title: Also Second
author: Sam
date: 2024-02-10
---
Text.
`

func newTestFS() fstest.MapFS {
	return fstest.MapFS{
		content.PromptsFile:         {Data: []byte(testPrompts)},
		content.BookmarksFile:       {Data: []byte(testBookmarks)},
		content.PortfolioFile:       {Data: []byte(testPortfolio)},
		"blog/first-post.mdx":       {Data: []byte(testPostOld)},
		"blog/second-post.md":       {Data: []byte(testPostNew)},
		"blog/also-second-post.mdx": {Data: []byte(testPostSameDay)},
	}
}

func newTestContent(t *testing.T) content.Service {
	t.Helper()
	svc, err := content.NewFromFS(newTestFS())
	require.NoError(t, err)
	return svc
}

func newTestPromptService(t *testing.T) PromptService {
	t.Helper()
	return NewPromptService(repositories.NewPromptRepository(newTestContent(t)))
}
