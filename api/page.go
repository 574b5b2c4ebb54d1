package api

// pageHTML is the embedded calculator page. It is a thin caller: it
// collects the three raw inputs, posts them to /api/wage/compute, and
// renders the returned breakdown or error message. The keystroke handler
// on the time fields mirrors MaskTimeInput.
const pageHTML = `<!doctype html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>Shift Wage Calculator</title>
  <style>
    body { font-family: system-ui, sans-serif; margin: 0 auto; padding: 24px; max-width: 560px; }
    h1 { font-size: 1.3em; font-weight: 600; }
    .field { margin-bottom: 14px; }
    .field label { display: block; font-weight: 500; margin-bottom: 4px; }
    .field input { padding: 8px 10px; font-size: 1em; border: 1px solid #ccc; border-radius: 6px; width: 140px; }
    .hint { color: #666; font-size: 0.85em; margin-top: 3px; }
    button { padding: 10px 20px; font-size: 1em; background: #1976d2; color: #fff; border: none; border-radius: 6px; cursor: pointer; }
    button:hover { background: #1565c0; }
    .err { color: #b00020; margin: 12px 0; padding: 10px; background: #ffebee; border-radius: 6px; }
    .card { border: 1px solid #e0e0e0; border-radius: 10px; padding: 16px; margin: 16px 0; background: #fafafa; }
    table { border-collapse: collapse; width: 100%; }
    td { padding: 6px 8px; border-top: 1px solid #eee; }
    td.k { color: #444; width: 180px; }
    .total { font-size: 1.2em; font-weight: 600; }
  </style>
</head>
<body>
  <h1>Shift Wage Calculator</h1>
  <form id="form">
    <div class="field">
      <label for="rate">Hourly rate</label>
      <input id="rate" type="text" inputmode="decimal" placeholder="1000" autocomplete="off">
    </div>
    <div class="field">
      <label for="start">Shift start</label>
      <input id="start" type="text" class="time" placeholder="22:00" maxlength="5" autocomplete="off">
      <div class="hint">24-hour HH:MM</div>
    </div>
    <div class="field">
      <label for="end">Shift end</label>
      <input id="end" type="text" class="time" placeholder="06:00" maxlength="5" autocomplete="off">
    </div>
    <button type="submit">Calculate</button>
  </form>

  <div id="error" class="err" style="display:none"></div>

  <div id="result" class="card" style="display:none">
    <table>
      <tr><td class="k">Shift</td><td id="r-shift"></td></tr>
      <tr><td class="k">Normal hours</td><td id="r-normal"></td></tr>
      <tr><td class="k">Night hours (premium)</td><td id="r-night"></td></tr>
      <tr><td class="k">Total pay</td><td id="r-total" class="total"></td></tr>
    </table>
  </div>

  <script>
  // Live time mask: strip non-digits, cap at 4, re-insert ":" after the
  // 2nd digit, preserving the caret relative to surviving digits.
  // Mirrors MaskTimeInput in api/mask.go.
  document.querySelectorAll('.time').forEach(function (input) {
    input.addEventListener('input', function () {
      var raw = input.value;
      var cursor = input.selectionStart;
      var digits = '';
      var before = 0;
      for (var i = 0; i < raw.length && digits.length < 4; i++) {
        var c = raw[i];
        if (c < '0' || c > '9') continue;
        digits += c;
        if (i < cursor) before++;
      }
      var masked = digits.length > 2 ? digits.slice(0, 2) + ':' + digits.slice(2) : digits;
      var caret = before > 2 ? before + 1 : before;
      input.value = masked;
      input.setSelectionRange(caret, caret);
    });
  });

  var form = document.getElementById('form');
  var errBox = document.getElementById('error');
  var resultBox = document.getElementById('result');

  form.addEventListener('submit', function (e) {
    e.preventDefault();
    errBox.style.display = 'none';
    resultBox.style.display = 'none';

    fetch('/api/wage/compute', {
      method: 'POST',
      headers: { 'Content-Type': 'application/json' },
      body: JSON.stringify({
        rate: document.getElementById('rate').value.trim(),
        start: document.getElementById('start').value,
        end: document.getElementById('end').value
      })
    }).then(function (resp) {
      return resp.json().then(function (body) { return { ok: resp.ok, body: body }; });
    }).then(function (r) {
      if (!r.ok) {
        errBox.textContent = r.body.error || 'Calculation failed';
        errBox.style.display = 'block';
        return;
      }
      var b = r.body;
      document.getElementById('r-shift').textContent = b.start + ' → ' + b.end + ' (' + b.total_hours + 'h)';
      document.getElementById('r-normal').textContent = b.normal_hours + 'h';
      document.getElementById('r-night').textContent = b.night_hours + 'h';
      document.getElementById('r-total').textContent = b.total_pay;
      resultBox.style.display = 'block';
    }).catch(function () {
      errBox.textContent = 'Request failed';
      errBox.style.display = 'block';
    });
  });
  </script>
</body>
</html>`
