package cli

// helpText is printed for -h/--help in place of cobra's generated help.
const helpText = `NAME
       indentect - Diagnose indentation

SYNOPSIS
       indentect [<options>] FILE...
       <command> | indentect [<options>]

DESCRIPTION
       Checks whether you have mixed indentation in the specified files (or
       standard input if none are specified, or for the file name "-"), and
       returns with exit code 1 if indentation is inconsistent.

       A line's indentation is its leading run of spaces and tabs. A line whose
       run holds both is mixed. A file is inconsistent if it has a mixed line,
       or if some lines are indented with spaces and others with tabs.

OPTIONS
       -h, --help
              Display this information and quit.

       -v, --verbose
              Verbose output. Prints the indentation of every line, then a
              summary of the indentation diagnostics.

       --version
              Print the version and quit.

       --config FILE
              Read options from FILE (default: .indentect.yaml or
              .indentect.yml in the working directory, if present).

       --color auto|always|never
              Style verbose output. "auto" styles only on a terminal.

       --scope file|run
              "file" requires each file to be consistent on its own. "run"
              also requires all files to use the same indentation.

       --skip-binary
              Skip files that look binary.

       --log-level debug|info|warn|error
              Diagnostic logging on standard error (default: warn).

ENVIRONMENT
       INDENTECT_VERBOSE, INDENTECT_COLOR, INDENTECT_SCOPE,
       INDENTECT_SKIP_BINARY, INDENTECT_LOG_LEVEL
              Override the config file. Command-line options override these.

EXAMPLES
       indentect *
              Checks whether indentation is consistent in all files.

       indentect -v file
              Checks and outputs a summary of the line indentation.

       git diff | indentect
              Checks standard input.

EXIT CODES
       0
              Indentation is consistent.
       1
              Detected inconsistent indentation.
       2
              Internal error: a file could not be read, or the options were
              invalid.

BUGS
       https://github.com/l0b0/indentect/issues

       When reporting any bugs, please include:
       * Input (if you're using a command, make sure to redirect to a file and
         include that).
       * The full command you ran.
       * --verbose output.
       * What you expected to see.
`
